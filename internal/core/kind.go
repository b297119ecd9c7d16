package core

// Kind identifies one of the four record categories the backend persists.
type Kind string

const (
	KindClient      Kind = "client"
	KindService     Kind = "service"
	KindAppointment Kind = "appointment"
	KindExpense     Kind = "expense"
)

// Kinds returns all record kinds in a stable order.
func Kinds() []Kind {
	return []Kind{KindClient, KindService, KindAppointment, KindExpense}
}

// String implements fmt.Stringer
func (k Kind) String() string {
	return string(k)
}

// IsValid returns true if the kind is one of the known record kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindClient, KindService, KindAppointment, KindExpense:
		return true
	default:
		return false
	}
}

// Plural returns the envelope field name carrying a list of this kind.
func (k Kind) Plural() string {
	switch k {
	case KindClient:
		return "clients"
	case KindService:
		return "services"
	case KindAppointment:
		return "appointments"
	case KindExpense:
		return "expenses"
	default:
		return ""
	}
}

// IDPrefix returns the prefix used for synthesized identifiers.
// Appointments and expenses are append-only and carry no identifier.
func (k Kind) IDPrefix() string {
	switch k {
	case KindClient:
		return "C_"
	case KindService:
		return "S_"
	default:
		return ""
	}
}

// ListAction returns the query action name that lists this kind.
func (k Kind) ListAction() string {
	switch k {
	case KindClient:
		return "listClients"
	case KindService:
		return "listServices"
	case KindAppointment:
		return "listAppointments"
	case KindExpense:
		return "listExpenses"
	default:
		return ""
	}
}

// KindForAction maps a list action name back to its kind.
func KindForAction(action string) (Kind, bool) {
	for _, k := range Kinds() {
		if k.ListAction() == action {
			return k, true
		}
	}
	return "", false
}
