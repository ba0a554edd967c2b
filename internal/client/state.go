// Package client implements the user-management front end: an explicit UI
// state advanced by a pure reducer, an HTTP client for the API service, and
// the Datastar-driven web surface that renders the state.
package client

// Messages shown in the error banner.
const (
	MsgFillAllFields = "Please fill in all fields"
	msgFetchFailed   = "Failed to fetch users: "
	msgCreateFailed  = "Failed to create user: "
	msgDeleteFailed  = "Failed to delete user: "
)

// Form holds the create-user inputs.
type Form struct {
	Name  string
	Email string
}

// Complete reports whether both fields are filled in.
func (f Form) Complete() bool {
	return f.Name != "" && f.Email != ""
}

// State is everything the UI renders. Loading is true only until the first
// list response arrives. Error holds the outcome of the most recent operation.
type State struct {
	Loading bool
	Users   []User
	Error   string
	Form    Form
}

// InitialState is the state before the first list request resolves.
func InitialState() State {
	return State{Loading: true, Users: []User{}}
}

// Event is an input to Reduce.
type Event interface {
	event()
}

type (
	LoadSucceeded   struct{ Users []User }
	LoadFailed      struct{ Err error }
	FormChanged     struct{ Name, Email string }
	CreateRejected  struct{}
	CreateSucceeded struct{ User User }
	CreateFailed    struct{ Err error }
	DeleteSucceeded struct{ ID int64 }
	DeleteFailed    struct{ Err error }
)

func (LoadSucceeded) event()   {}
func (LoadFailed) event()      {}
func (FormChanged) event()     {}
func (CreateRejected) event()  {}
func (CreateSucceeded) event() {}
func (CreateFailed) event()    {}
func (DeleteSucceeded) event() {}
func (DeleteFailed) event()    {}

// Reduce returns the state that follows s after e. It never mutates s; the
// returned Users slice is always freshly allocated when it changes.
func Reduce(s State, e Event) State {
	switch e := e.(type) {
	case LoadSucceeded:
		s.Loading = false
		s.Users = append([]User{}, e.Users...)
		s.Error = ""

	case LoadFailed:
		s.Loading = false
		s.Users = []User{}
		s.Error = msgFetchFailed + detail(e.Err)

	case FormChanged:
		s.Form = Form{Name: e.Name, Email: e.Email}

	case CreateRejected:
		s.Error = MsgFillAllFields

	case CreateSucceeded:
		users := make([]User, 0, len(s.Users)+1)
		users = append(users, s.Users...)
		s.Users = append(users, e.User)
		s.Form = Form{}
		s.Error = ""

	case CreateFailed:
		s.Error = msgCreateFailed + detail(e.Err)

	case DeleteSucceeded:
		users := make([]User, 0, len(s.Users))
		for _, u := range s.Users {
			if u.ID != e.ID {
				users = append(users, u)
			}
		}
		s.Users = users
		s.Error = ""

	case DeleteFailed:
		s.Error = msgDeleteFailed + detail(e.Err)
	}

	return s
}

func detail(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
