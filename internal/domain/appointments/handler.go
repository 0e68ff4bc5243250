package appointments

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"vet-clinic/internal/domain/animals"
	"vet-clinic/internal/domain/refs"
	"vet-clinic/internal/platform/httpx"
)

// AnimalReader resuelve el animal para embeberlo en la respuesta.
type AnimalReader interface {
	Get(ctx context.Context, id int64) (animals.Animal, error)
}

// Views agrupa lo necesario para renderizar una cita con su animal (y el
// dueño del animal, un nivel).
type Views struct {
	Animals AnimalReader
	Owners  animals.OwnerReader
}

func RegisterRoutes(r chi.Router, svc *Service, views Views, rs httpx.Responder) {
	r.Route("/appointments", func(ar chi.Router) {
		ar.Get("/", listAppointmentsHandler(svc, views, rs))
		ar.Post("/", createAppointmentHandler(svc, views, rs))

		ar.Get("/search", searchAppointmentsHandler(svc, views, rs))

		ar.Get("/{id}", getAppointmentHandler(svc, views, rs))
		ar.Put("/{id}", updateAppointmentHandler(svc, views, rs))
		ar.Delete("/{id}", deleteAppointmentHandler(svc, rs))
	})

	// Historial de citas de un animal
	r.Get("/animals/{id:[0-9]+}/appointments", listAnimalAppointmentsHandler(svc, views, rs))
}

type animalRef struct {
	ID *int64 `json:"id"`
}

type appointmentRequest struct {
	Date             string     `json:"date"`
	Description      string     `json:"description"`
	VeterinarianName string     `json:"veterinarianName"`
	Status           string     `json:"status"`
	Animal           *animalRef `json:"animal"`
}

// toInput: sin "animal", null o {"id": null} => cita sin animal.
func (req appointmentRequest) toInput() Input {
	in := Input{
		Date:             req.Date,
		Description:      req.Description,
		VeterinarianName: req.VeterinarianName,
		Status:           req.Status,
	}
	if req.Animal != nil {
		in.AnimalID = req.Animal.ID
	}
	return in
}

type Response struct {
	ID               int64             `json:"id"`
	Date             string            `json:"date"`
	Description      string            `json:"description"`
	VeterinarianName string            `json:"veterinarianName"`
	Status           string            `json:"status"`
	Animal           *animals.Response `json:"animal"`
}

type renderer struct {
	animals AnimalReader
	inner   *animals.Renderer
	cache   map[int64]*animals.Response
}

func (v Views) renderer() *renderer {
	return &renderer{
		animals: v.Animals,
		inner:   animals.NewRenderer(v.Owners),
		cache:   map[int64]*animals.Response{},
	}
}

func (rd *renderer) render(ctx context.Context, a Appointment) (Response, error) {
	out := Response{
		ID:               a.ID,
		Date:             a.Date,
		Description:      a.Description,
		VeterinarianName: a.VeterinarianName,
		Status:           a.Status,
	}
	if a.AnimalID == nil {
		return out, nil
	}

	id := *a.AnimalID
	if v, ok := rd.cache[id]; ok {
		out.Animal = v
		return out, nil
	}

	var v animals.Response
	an, err := rd.animals.Get(ctx, id)
	switch {
	case err == nil:
		v, err = rd.inner.Render(ctx, an)
		if err != nil {
			return Response{}, err
		}
	case errors.Is(err, animals.ErrNotFound):
		// Referencia colgada: solo el id.
		v = animals.Response{ID: id}
	default:
		return Response{}, err
	}

	rd.cache[id] = &v
	out.Animal = &v
	return out, nil
}

func writeAppointment(w http.ResponseWriter, r *http.Request, rs httpx.Responder, views Views, status int, a Appointment) {
	v, err := views.renderer().render(r.Context(), a)
	if err != nil {
		rs.Internal(w, r, err)
		return
	}
	rs.JSON(w, status, v)
}

func writeAppointments(w http.ResponseWriter, r *http.Request, rs httpx.Responder, views Views, items []Appointment) {
	rd := views.renderer()
	out := make([]Response, 0, len(items))
	for _, a := range items {
		v, err := rd.render(r.Context(), a)
		if err != nil {
			rs.Internal(w, r, err)
			return
		}
		out = append(out, v)
	}
	rs.JSON(w, http.StatusOK, out)
}

func writeMutationError(w http.ResponseWriter, r *http.Request, rs httpx.Responder, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		rs.NotFound(w, "appointment not found")
	case errors.Is(err, refs.ErrDanglingReference):
		rs.Error(w, http.StatusUnprocessableEntity, err.Error())
	default:
		rs.Internal(w, r, err)
	}
}

// listAppointmentsHandler godoc
// @Summary Listar citas
// @Tags appointments
// @Produce json
// @Success 200 {array} Response
// @Router /appointments [get]
func listAppointmentsHandler(svc *Service, views Views, rs httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			rs.Internal(w, r, err)
			return
		}
		writeAppointments(w, r, rs, views, items)
	}
}

// createAppointmentHandler godoc
// @Summary Crear cita
// @Description Por defecto el id de animal se guarda sin validar.
// @Tags appointments
// @Accept json
// @Produce json
// @Param payload body appointmentRequest true "Datos de la cita"
// @Success 201 {object} Response
// @Failure 400 {object} httpx.ErrorResponse "invalid json"
// @Failure 422 {object} httpx.ErrorResponse "dangling reference (policy strict)"
// @Router /appointments [post]
func createAppointmentHandler(svc *Service, views Views, rs httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req appointmentRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			rs.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		a, err := svc.Create(r.Context(), req.toInput())
		if err != nil {
			writeMutationError(w, r, rs, err)
			return
		}
		writeAppointment(w, r, rs, views, http.StatusCreated, a)
	}
}

// getAppointmentHandler godoc
// @Summary Obtener cita por id
// @Tags appointments
// @Produce json
// @Param id path int true "ID de la cita"
// @Success 200 {object} Response
// @Failure 400 {object} httpx.ErrorResponse "invalid id"
// @Failure 404 {object} httpx.ErrorResponse "appointment not found"
// @Router /appointments/{id} [get]
func getAppointmentHandler(svc *Service, views Views, rs httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "id")
		if err != nil {
			rs.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		a, err := svc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				rs.NotFound(w, "appointment not found")
				return
			}
			rs.Internal(w, r, err)
			return
		}
		writeAppointment(w, r, rs, views, http.StatusOK, a)
	}
}

// updateAppointmentHandler godoc
// @Summary Reemplazar cita
// @Description Reemplazo completo, incluida la referencia al animal (sin "animal" queda vacía).
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path int true "ID de la cita"
// @Param payload body appointmentRequest true "Datos de la cita"
// @Success 200 {object} Response
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse "appointment not found"
// @Failure 422 {object} httpx.ErrorResponse "dangling reference (policy strict)"
// @Router /appointments/{id} [put]
func updateAppointmentHandler(svc *Service, views Views, rs httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "id")
		if err != nil {
			rs.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		var req appointmentRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			rs.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		a, err := svc.Update(r.Context(), id, req.toInput())
		if err != nil {
			writeMutationError(w, r, rs, err)
			return
		}
		writeAppointment(w, r, rs, views, http.StatusOK, a)
	}
}

// deleteAppointmentHandler godoc
// @Summary Borrar cita
// @Description Idempotente.
// @Tags appointments
// @Param id path int true "ID de la cita"
// @Success 204
// @Failure 400 {object} httpx.ErrorResponse "invalid id"
// @Router /appointments/{id} [delete]
func deleteAppointmentHandler(svc *Service, rs httpx.Responder) http.HandlerFunc {
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

// searchAppointmentsHandler godoc
// @Summary Buscar citas
// @Description veterinarian y status exactos, combinados con AND; sin ninguno devuelve todas.
// @Tags appointments
// @Produce json
// @Param veterinarian query string false "Nombre del veterinario"
// @Param status query string false "Estado"
// @Success 200 {array} Response
// @Router /appointments/search [get]
func searchAppointmentsHandler(svc *Service, views Views, rs httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Search(r.Context(),
			httpx.QueryString(r, "veterinarian"),
			httpx.QueryString(r, "status"),
		)
		if err != nil {
			rs.Internal(w, r, err)
			return
		}
		writeAppointments(w, r, rs, views, items)
	}
}

// listAnimalAppointmentsHandler godoc
// @Summary Citas de un animal
// @Tags appointments
// @Produce json
// @Param id path int true "ID del animal"
// @Success 200 {array} Response
// @Failure 400 {object} httpx.ErrorResponse "invalid id"
// @Router /animals/{id}/appointments [get]
func listAnimalAppointmentsHandler(svc *Service, views Views, rs httpx.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.PathID(r, "id")
		if err != nil {
			rs.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		items, err := svc.ByAnimal(r.Context(), id)
		if err != nil {
			rs.Internal(w, r, err)
			return
		}
		writeAppointments(w, r, rs, views, items)
	}
}
