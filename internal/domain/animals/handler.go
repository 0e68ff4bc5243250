package animals

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"vet-clinic/internal/domain/refs"
	"vet-clinic/internal/platform/httpx"
)

func RegisterRoutes(r chi.Router, svc *Service, owners OwnerReader, rs httpx.Responder) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Get("/", listAnimalsHandler(svc, owners, rs))
		ar.Post("/", createAnimalHandler(svc, owners, rs))

		ar.Get("/search", searchAnimalsHandler(svc, owners, rs))
		ar.Get("/species/{species}", animalsBySpeciesHandler(svc, owners, rs))

		ar.Get("/{id}", getAnimalHandler(svc, owners, rs))
		ar.Put("/{id}", updateAnimalHandler(svc, owners, rs))
		ar.Delete("/{id}", deleteAnimalHandler(svc, rs))
	})

	// Animales de un dueño
	r.Get("/owners/{id:[0-9]+}/animals", listOwnerAnimalsHandler(svc, owners, rs))
}

// ownerRef es {"id": N}. Cualquier otro campo del dueño se ignora.
type ownerRef struct {
	ID *int64 `json:"id"`
}

type animalRequest struct {
	Name    string    `json:"name"`
	Species string    `json:"species"`
	Age     int       `json:"age"`
	Gender  string    `json:"gender"`
	Owner   *ownerRef `json:"owner"`
}

// ownerChange traduce el body a una decisión explícita:
//   - sin "owner" o "owner": null  -> limpiar
//   - "owner": {"id": null} o {}    -> conservar
//   - "owner": {"id": N}            -> asignar N
func (req animalRequest) ownerChange() OwnerChange {
	switch {
	case req.Owner == nil:
		return ClearOwner()
	case req.Owner.ID == nil:
		return KeepOwner()
	default:
		return SetOwner(*req.Owner.ID)
	}
}

func (req animalRequest) toInput() Input {
	return Input{
		Name:    req.Name,
		Species: req.Species,
		Age:     req.Age,
		Gender:  req.Gender,
		Owner:   req.ownerChange(),
	}
}

// writeAnimal / writeAnimals: render + JSON. Un error de render es un 500.
func writeAnimal(w http.ResponseWriter, r *http.Request, rs httpx.Responder, owners OwnerReader, status int, a Animal) {
	v, err := NewRenderer(owners).Render(r.Context(), a)
	if err != nil {
		rs.Internal(w, r, err)
		return
	}
	rs.JSON(w, status, v)
}

func writeAnimals(w http.ResponseWriter, r *http.Request, rs httpx.Responder, owners OwnerReader, items []Animal) {
	out, err := NewRenderer(owners).RenderAll(r.Context(), items)
	if err != nil {
		rs.Internal(w, r, err)
		return
	}
	rs.JSON(w, http.StatusOK, out)
}

func writeMutationError(w http.ResponseWriter, r *http.Request, rs httpx.Responder, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		rs.NotFound(w, "animal not found")
	case errors.Is(err, refs.ErrDanglingReference):
		rs.Error(w, http.StatusUnprocessableEntity, err.Error())
	default:
		rs.Internal(w, r, err)
	}
}

// listAnimalsHandler godoc
// @Summary Listar animales
// @Tags animals
// @Produce json
// @Success 200 {array} Response
// @Router /animals [get]
func listAnimalsHandler(svc *Service, owners OwnerReader, rs httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			rs.Internal(w, r, err)
			return
		}
		writeAnimals(w, r, rs, owners, items)
	}
}

// createAnimalHandler godoc
// @Summary Crear animal
// @Description "owner": {"id": N} asigna dueño según la policy configurada (por defecto, si no existe se guarda sin dueño).
// @Tags animals
// @Accept json
// @Produce json
// @Param payload body animalRequest true "Datos del animal"
// @Success 201 {object} Response
// @Failure 400 {object} httpx.ErrorResponse "invalid json"
// @Failure 422 {object} httpx.ErrorResponse "dangling reference (policy strict)"
// @Router /animals [post]
func createAnimalHandler(svc *Service, owners OwnerReader, rs httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req animalRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			rs.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		a, err := svc.Create(r.Context(), req.toInput())
		if err != nil {
			writeMutationError(w, r, rs, err)
			return
		}
		writeAnimal(w, r, rs, owners, http.StatusCreated, a)
	}
}

// getAnimalHandler godoc
// @Summary Obtener animal por id
// @Tags animals
// @Produce json
// @Param id path int true "ID del animal"
// @Success 200 {object} Response
// @Failure 400 {object} httpx.ErrorResponse "invalid id"
// @Failure 404 {object} httpx.ErrorResponse "animal not found"
// @Router /animals/{id} [get]
func getAnimalHandler(svc *Service, owners OwnerReader, rs httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "id")
		if err != nil {
			rs.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		a, err := svc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				rs.NotFound(w, "animal not found")
				return
			}
			rs.Internal(w, r, err)
			return
		}
		writeAnimal(w, r, rs, owners, http.StatusOK, a)
	}
}

// updateAnimalHandler godoc
// @Summary Reemplazar animal
// @Description Sin "owner" (o null) limpia el dueño; {"id": null} lo conserva; {"id": N} lo cambia.
// @Tags animals
// @Accept json
// @Produce json
// @Param id path int true "ID del animal"
// @Param payload body animalRequest true "Datos del animal"
// @Success 200 {object} Response
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse "animal not found"
// @Failure 422 {object} httpx.ErrorResponse "dangling reference (policy strict)"
// @Router /animals/{id} [put]
func updateAnimalHandler(svc *Service, owners OwnerReader, rs httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "id")
		if err != nil {
			rs.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		var req animalRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			rs.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		a, err := svc.Update(r.Context(), id, req.toInput())
		if err != nil {
			writeMutationError(w, r, rs, err)
			return
		}
		writeAnimal(w, r, rs, owners, http.StatusOK, a)
	}
}

// deleteAnimalHandler godoc
// @Summary Borrar animal
// @Description Idempotente. Las citas que lo referencian no se tocan.
// @Tags animals
// @Param id path int true "ID del animal"
// @Success 204
// @Failure 400 {object} httpx.ErrorResponse "invalid id"
// @Router /animals/{id} [delete]
func deleteAnimalHandler(svc *Service, rs httpx.Responder) http.HandlerFunc {
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

// animalsBySpeciesHandler godoc
// @Summary Animales por especie
// @Description Match exacto.
// @Tags animals
// @Produce json
// @Param species path string true "Especie"
// @Success 200 {array} Response
// @Router /animals/species/{species} [get]
func animalsBySpeciesHandler(svc *Service, owners OwnerReader, rs httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.BySpecies(r.Context(), chi.URLParam(r, "species"))
		if err != nil {
			rs.Internal(w, r, err)
			return
		}
		writeAnimals(w, r, rs, owners, items)
	}
}

// searchAnimalsHandler godoc
// @Summary Buscar animales
// @Description species y ownerId se combinan con AND; sin ninguno devuelve todos.
// @Tags animals
// @Produce json
// @Param species query string false "Especie (exacta)"
// @Param ownerId query int false "ID del dueño"
// @Success 200 {array} Response
// @Failure 400 {object} httpx.ErrorResponse "invalid id"
// @Router /animals/search [get]
func searchAnimalsHandler(svc *Service, owners OwnerReader, rs httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := httpx.QueryID(r, "ownerId")
		if err != nil {
			rs.Error(w, http.StatusBadRequest, "invalid ownerId")
			return
		}

		items, err := svc.Search(r.Context(), httpx.QueryString(r, "species"), ownerID)
		if err != nil {
			rs.Internal(w, r, err)
			return
		}
		writeAnimals(w, r, rs, owners, items)
	}
}

// listOwnerAnimalsHandler godoc
// @Summary Animales de un dueño
// @Tags animals
// @Produce json
// @Param id path int true "ID del dueño"
// @Success 200 {array} Response
// @Failure 400 {object} httpx.ErrorResponse "invalid id"
// @Router /owners/{id}/animals [get]
func listOwnerAnimalsHandler(svc *Service, owners OwnerReader, rs httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "id")
		if err != nil {
			rs.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		items, err := svc.ByOwner(r.Context(), id)
		if err != nil {
			rs.Internal(w, r, err)
			return
		}
		writeAnimals(w, r, rs, owners, items)
	}
}
