package domain

// Verb is an action an actor may attempt against a resource.
type Verb string

const (
	VerbList     Verb = "list"
	VerbRetrieve Verb = "retrieve"
	VerbCreate   Verb = "create"
	VerbUpdate   Verb = "update"
	VerbDelete   Verb = "delete"
	VerbRegister Verb = "register"
)

// Resources expose their ownership key through one of these two interfaces,
// depending on whether they carry an author or a rating_author.
type authorOwned interface {
	OwnerUserID() int64
}

type ratingAuthorOwned interface {
	RatingOwnerUserID() int64
}

// Can decides whether an actor may perform a verb on a resource. A nil actor
// is anonymous. The resource may be nil for verbs that don't target an
// existing object (list, create, register).
//
// Reads are open to everyone. Creation requires authentication. Updates are
// reserved for the resource's author; deletion additionally allows staff.
// Registration is only for anonymous actors, except staff may provision
// accounts on others' behalf.
func Can(actor *User, verb Verb, resource any) bool {
	switch verb {
	case VerbList, VerbRetrieve:
		return true
	case VerbRegister:
		return actor == nil || actor.IsStaff
	case VerbCreate:
		return actor != nil
	case VerbUpdate:
		if actor == nil {
			return false
		}
		owner, ok := ownerOf(resource)
		return ok && owner == actor.ID
	case VerbDelete:
		if actor == nil {
			return false
		}
		if actor.IsStaff {
			return true
		}
		owner, ok := ownerOf(resource)
		return ok && owner == actor.ID
	}

	return false
}

func ownerOf(resource any) (int64, bool) {
	switch res := resource.(type) {
	case authorOwned:
		return res.OwnerUserID(), true
	case ratingAuthorOwned:
		return res.RatingOwnerUserID(), true
	}
	return 0, false
}
