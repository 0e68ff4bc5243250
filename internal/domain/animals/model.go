package animals

// Animal referencia a su dueño solo por id (referencia débil). Borrar el dueño
// no toca al animal.
type Animal struct {
	ID int64

	Name    string
	Species string
	Age     int
	Gender  string

	OwnerID *int64
}

// OwnerChangeKind indica qué hacer con el dueño en una escritura.
type OwnerChangeKind int

const (
	// OwnerClear deja al animal sin dueño. Es el zero value: si el body no trae
	// "owner", se limpia.
	OwnerClear OwnerChangeKind = iota
	// OwnerKeep conserva el dueño actual ("owner": {"id": null}).
	OwnerKeep
	// OwnerSet asigna OwnerID (sujeto a la policy de referencias).
	OwnerSet
)

type OwnerChange struct {
	Kind    OwnerChangeKind
	OwnerID int64
}

func ClearOwner() OwnerChange { return OwnerChange{Kind: OwnerClear} }

func KeepOwner() OwnerChange { return OwnerChange{Kind: OwnerKeep} }

func SetOwner(id int64) OwnerChange { return OwnerChange{Kind: OwnerSet, OwnerID: id} }
