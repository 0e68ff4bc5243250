package owners

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"vet-clinic/internal/platform/httpx"
)

func RegisterRoutes(r chi.Router, svc *Service, rs httpx.Responder) {
	r.Route("/owners", func(or chi.Router) {
		or.Get("/", listOwnersHandler(svc, rs))
		or.Post("/", createOwnerHandler(svc, rs))

		// Antes que /{id} para que "search" no se lea como id.
		or.Get("/search", searchOwnersHandler(svc, rs))

		or.Get("/{id}", getOwnerHandler(svc, rs))
		or.Put("/{id}", updateOwnerHandler(svc, rs))
		or.Delete("/{id}", deleteOwnerHandler(svc, rs))
	})
}

// ownerRequest es el cuerpo para crear/reemplazar un dueño.
type ownerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// Response es la representación JSON de un dueño. Nunca incluye sus animales.
type Response struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

func ToResponse(o Owner) Response {
	return Response{
		ID:        o.ID,
		FirstName: o.FirstName,
		LastName:  o.LastName,
		Email:     o.Email,
		Phone:     o.Phone,
		Address:   o.Address,
	}
}

func toResponses(items []Owner) []Response {
	out := make([]Response, 0, len(items))
	for _, o := range items {
		out = append(out, ToResponse(o))
	}
	return out
}

func (req ownerRequest) toInput() Input {
	return Input{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
	}
}

// listOwnersHandler godoc
// @Summary Listar dueños
// @Tags owners
// @Produce json
// @Success 200 {array} Response
// @Failure 500 {object} httpx.ErrorResponse
// @Router /owners [get]
func listOwnersHandler(svc *Service, rs httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			rs.Internal(w, r, err)
			return
		}
		rs.JSON(w, http.StatusOK, toResponses(items))
	}
}

// createOwnerHandler godoc
// @Summary Crear dueño
// @Description No hay campos obligatorios; el id lo asigna el servidor.
// @Tags owners
// @Accept json
// @Produce json
// @Param payload body ownerRequest true "Datos del dueño"
// @Success 201 {object} Response
// @Failure 400 {object} httpx.ErrorResponse "invalid json"
// @Router /owners [post]
func createOwnerHandler(svc *Service, rs httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ownerRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			rs.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		o, err := svc.Create(r.Context(), req.toInput())
		if err != nil {
			rs.Internal(w, r, err)
			return
		}
		rs.JSON(w, http.StatusCreated, ToResponse(o))
	}
}

// getOwnerHandler godoc
// @Summary Obtener dueño por id
// @Tags owners
// @Produce json
// @Param id path int true "ID del dueño"
// @Success 200 {object} Response
// @Failure 400 {object} httpx.ErrorResponse "invalid id"
// @Failure 404 {object} httpx.ErrorResponse "owner not found"
// @Router /owners/{id} [get]
func getOwnerHandler(svc *Service, rs httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "id")
		if err != nil {
			rs.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		o, err := svc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				rs.NotFound(w, "owner not found")
				return
			}
			rs.Internal(w, r, err)
			return
		}
		rs.JSON(w, http.StatusOK, ToResponse(o))
	}
}

// updateOwnerHandler godoc
// @Summary Reemplazar dueño
// @Description Reemplazo completo: los campos omitidos quedan vacíos.
// @Tags owners
// @Accept json
// @Produce json
// @Param id path int true "ID del dueño"
// @Param payload body ownerRequest true "Datos del dueño"
// @Success 200 {object} Response
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse "owner not found"
// @Router /owners/{id} [put]
func updateOwnerHandler(svc *Service, rs httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "id")
		if err != nil {
			rs.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		var req ownerRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			rs.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		o, err := svc.Update(r.Context(), id, req.toInput())
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				rs.NotFound(w, "owner not found")
				return
			}
			rs.Internal(w, r, err)
			return
		}
		rs.JSON(w, http.StatusOK, ToResponse(o))
	}
}

// deleteOwnerHandler godoc
// @Summary Borrar dueño
// @Description Idempotente. No verifica animales que lo referencien.
// @Tags owners
// @Param id path int true "ID del dueño"
// @Success 204
// @Failure 400 {object} httpx.ErrorResponse "invalid id"
// @Router /owners/{id} [delete]
func deleteOwnerHandler(svc *Service, rs httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "id")
		if err != nil {
			rs.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			rs.Internal(w, r, err)
			return
		}
		rs.NoContent(w)
	}
}

// searchOwnersHandler godoc
// @Summary Buscar dueños
// @Description Substring case-insensitive sobre nombre, apellido o email. Sin query => todos.
// @Tags owners
// @Produce json
// @Param query query string false "Texto a buscar"
// @Success 200 {array} Response
// @Router /owners/search [get]
func searchOwnersHandler(svc *Service, rs httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Search(r.Context(), r.URL.Query().Get("query"))
		if err != nil {
			rs.Internal(w, r, err)
			return
		}
		rs.JSON(w, http.StatusOK, toResponses(items))
	}
}
