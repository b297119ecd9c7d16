// Package sheets defines the persistence seam shared by the spreadsheet,
// memory, and SQLite backends: the outbound ports, the canonical column
// layout, and the mapping from typed domain values to rows.
package sheets

import (
	"fmt"
	"time"

	"salonledger/internal/core"
	"salonledger/internal/record"
)

// Headers returns the canonical column headers for one kind's sheet tab.
// These are the current-generation spellings; historical tabs with older
// spellings still read fine through the record package's lookup lists.
func Headers(kind core.Kind) []string {
	switch kind {
	case core.KindClient:
		return []string{"ID_CLIENTE", "NOME", "TELEFONE", "OBSERVACOES", "DATA_CADASTRO"}
	case core.KindService:
		return []string{"ID_SERVICO", "NOME_SERVICO", "CATEGORIA", "PRECO_BASE", "ATIVO", "DATA_CADASTRO"}
	case core.KindAppointment:
		return []string{"DATA", "ID_CLIENTE", "CLIENTE", "ID_SERVICO", "SERVICO", "VALOR_TOTAL", "FORMA_PAGAMENTO", "OBSERVACOES"}
	case core.KindExpense:
		return []string{"DATA", "CATEGORIA", "DESCRICAO", "VALOR", "FORMA_PAGAMENTO", "OBSERVACOES"}
	default:
		return nil
	}
}

// SynthesizeID builds a new identifier for kinds that carry one,
// e.g. "C_1764407000123". Kinds without identifiers return "".
func SynthesizeID(kind core.Kind) string {
	prefix := kind.IDPrefix()
	if prefix == "" {
		return ""
	}
	return fmt.Sprintf("%s%d", prefix, time.Now().UnixMilli())
}

// EnsureID fills in a synthesized identifier when the row lacks one.
// Returns the identifier in effect ("" for kinds without identifiers).
func EnsureID(kind core.Kind, rec record.Record) string {
	switch kind {
	case core.KindClient:
		if id := record.ClientID(rec); id != "" {
			return id
		}
		id := SynthesizeID(kind)
		rec["ID_CLIENTE"] = id
		return id
	case core.KindService:
		if id := record.ServiceID(rec); id != "" {
			return id
		}
		id := SynthesizeID(kind)
		rec["ID_SERVICO"] = id
		return id
	default:
		return ""
	}
}

// ClientRow maps a validated client onto the canonical column layout.
func ClientRow(c core.Client) record.Record {
	rec := record.Record{
		"ID_CLIENTE":  c.ID,
		"NOME":        c.Name,
		"TELEFONE":    c.Phone,
		"OBSERVACOES": c.Notes,
	}
	if !c.RegisteredAt.IsZero() {
		rec["DATA_CADASTRO"] = c.RegisteredAt.Format("2006-01-02")
	}
	return rec
}

// ServiceRow maps a validated service onto the canonical column layout.
func ServiceRow(s core.Service) record.Record {
	active := "Não"
	if s.Active {
		active = "Sim"
	}
	rec := record.Record{
		"ID_SERVICO":   s.ID,
		"NOME_SERVICO": s.Name,
		"CATEGORIA":    s.Category,
		"PRECO_BASE":   s.BasePrice.Format(),
		"ATIVO":        active,
	}
	if !s.RegisteredAt.IsZero() {
		rec["DATA_CADASTRO"] = s.RegisteredAt.Format("2006-01-02")
	}
	return rec
}

// AppointmentRow maps a validated appointment onto the canonical layout,
// carrying the denormalized names next to the references.
func AppointmentRow(a core.Appointment) record.Record {
	return record.Record{
		"DATA":            a.Date,
		"ID_CLIENTE":      a.ClientRef,
		"CLIENTE":         a.ClientName,
		"ID_SERVICO":      a.ServiceRef,
		"SERVICO":         a.ServiceName,
		"VALOR_TOTAL":     a.Total.Format(),
		"FORMA_PAGAMENTO": a.PaymentMethod,
		"OBSERVACOES":     a.Notes,
	}
}

// ExpenseRow maps a validated expense onto the canonical layout.
func ExpenseRow(e core.Expense) record.Record {
	return record.Record{
		"DATA":            e.Date,
		"CATEGORIA":       e.Category,
		"DESCRICAO":       e.Description,
		"VALOR":           e.Amount.Format(),
		"FORMA_PAGAMENTO": e.PaymentMethod,
		"OBSERVACOES":     e.Notes,
	}
}
