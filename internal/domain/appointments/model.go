package appointments

// Estados habituales. Status es texto libre: no se valida ni hay transiciones.
const (
	StatusScheduled = "SCHEDULED"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
)

// Appointment referencia al animal solo por id. Date es texto tal cual llega
// (no se parsea como fecha).
type Appointment struct {
	ID int64

	Date             string
	Description      string
	VeterinarianName string
	Status           string

	AnimalID *int64
}
