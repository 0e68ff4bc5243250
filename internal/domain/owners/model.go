package owners

// Owner es el dueño de uno o más animales. Los animales lo referencian por id;
// el Owner no conoce sus animales.
type Owner struct {
	ID int64

	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
}
