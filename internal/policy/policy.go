package policy

import "github.com/google/uuid"

// Action is an operation a subject wants to perform on a resource.
type Action int

const (
	Read Action = iota
	List
	Create
	Update
	Delete
	Generate
)

func (a Action) String() string {
	switch a {
	case Read:
		return "read"
	case List:
		return "list"
	case Create:
		return "create"
	case Update:
		return "update"
	case Delete:
		return "delete"
	case Generate:
		return "generate"
	default:
		return "unknown"
	}
}

// Kind names a resource type.
type Kind string

const (
	KindUser        Kind = "user"
	KindMeasurement Kind = "measurement"
	KindOutfit      Kind = "outfit"
	KindWardrobe    Kind = "wardrobe"
)

// Subject is the authenticated caller.
type Subject struct {
	UserID  uuid.UUID
	IsAdmin bool
}

// Resource is the owned record being accessed.
type Resource struct {
	Kind    Kind
	OwnerID uuid.UUID
}

// Can reports whether subject may perform action on resource.
//
// Owners may do anything with their own records. Admins may additionally read
// and list user records. Everything else is denied.
func Can(subject Subject, action Action, resource Resource) bool {
	if subject.UserID == uuid.Nil {
		return false
	}
	if resource.OwnerID == subject.UserID {
		return true
	}
	if subject.IsAdmin && resource.Kind == KindUser {
		return action == Read || action == List
	}
	return false
}
