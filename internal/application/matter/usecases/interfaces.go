package usecases

// Actor is the authenticated staff identity a request acts as. It carries
// exactly what the matter access scope consumes.
type Actor struct {
	UserID     uint
	Department string
}
