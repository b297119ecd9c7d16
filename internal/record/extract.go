package record

import (
	"strings"

	"salonledger/internal/core"
)

// fieldSpec is the lookup configuration for one logical field. The key
// spellings are enumerated explicitly, newest header convention first.
type fieldSpec struct {
	priorities []string
	filters    []string
}

func (fs fieldSpec) get(rec Record) string {
	return Field(rec, fs.priorities, fs.filters)
}

func (fs fieldSpec) raw(rec Record) (any, bool) {
	return Value(rec, fs.priorities, fs.filters)
}

var (
	clientID = fieldSpec{
		priorities: []string{"ID_CLIENTE", "idCliente", "ID", "id", "CODIGO", "Código", "codigo"},
		filters:    []string{"id", "cod"},
	}
	clientName = fieldSpec{
		priorities: []string{
			"NOME", "Nome", "nome",
			"CLIENTE", "Cliente",
			"NOME COMPLETO", "Nome Completo", "NOME COMPLETO *",
			"nome_completo",
		},
		filters: []string{"nome", "client"},
	}
	clientPhone = fieldSpec{
		priorities: []string{"TELEFONE", "Telefone", "telefone", "CELULAR", "Celular", "celular"},
		filters:    []string{"tel", "fone", "cel"},
	}
	clientNotes = fieldSpec{
		priorities: []string{"OBS", "Obs", "OBSERVACOES", "Observações", "OBSERVAÇÕES", "observacoes"},
		filters:    []string{"obs", "observ"},
	}
	clientRegisteredAt = fieldSpec{
		priorities: []string{"DATA_CADASTRO", "DATA_CAD", "dataCadastro", "DataCadastro"},
		filters:    []string{"data", "cadast"},
	}

	serviceID = fieldSpec{
		priorities: []string{"ID_SERVICO", "idServico", "ID", "id"},
		filters:    []string{"id_serv"},
	}
	serviceName = fieldSpec{
		priorities: []string{"NOME_SERVICO", "Nome_servico", "NOME", "Nome", "nome", "SERVICO", "Serviço", "servico"},
		filters:    []string{"servi", "nome"},
	}
	serviceCategory = fieldSpec{
		priorities: []string{"CATEGORIA", "Categoria", "categoria", "TIPO", "Tipo"},
		filters:    []string{"categ"},
	}
	servicePrice = fieldSpec{
		priorities: []string{"PRECO_BASE", "Preco_base", "precoBase", "PREÇO", "Preço"},
		filters:    []string{"preco", "preço"},
	}
	serviceActive = fieldSpec{
		priorities: []string{"ATIVO", "Ativo", "ativo", "STATUS", "Status"},
		filters:    []string{"ativo", "status"},
	}

	rowDate = fieldSpec{
		priorities: []string{"DATA", "Data", "data"},
		filters:    []string{"data"},
	}
	appointmentClientRef = fieldSpec{
		priorities: []string{"ID_CLIENTE", "idCliente", "IDCLIENTE"},
		filters:    []string{"id_client"},
	}
	appointmentClientName = fieldSpec{
		priorities: []string{"CLIENTE", "Cliente", "NOME_CLIENTE", "NomeCliente", "nomeCliente"},
		filters:    []string{"client", "nome"},
	}
	appointmentServiceRef = fieldSpec{
		priorities: []string{"ID_SERVICO", "idServico", "IDSERVICO"},
		filters:    []string{"id_serv"},
	}
	appointmentServiceName = fieldSpec{
		priorities: []string{"SERVICO", "Serviço", "Servico", "NOME_SERVICO", "nomeServico"},
		filters:    []string{"servi", "nome"},
	}
	appointmentAmount = fieldSpec{
		priorities: []string{"VALOR_TOTAL", "valorTotal", "VALOR", "valor"},
		filters:    []string{"valor"},
	}
	paymentMethod = fieldSpec{
		priorities: []string{"FORMA_PAGAMENTO", "formaPagamento", "PAGAMENTO", "pagamento"},
		filters:    []string{"pagamento", "pgto"},
	}
	notes = fieldSpec{
		priorities: []string{"OBSERVACOES", "OBS", "observacoes", "Observações"},
		filters:    []string{"obs", "observ"},
	}

	expenseCategory = fieldSpec{
		priorities: []string{"CATEGORIA", "Categoria", "categoria"},
		filters:    []string{"categ"},
	}
	expenseDescription = fieldSpec{
		priorities: []string{"DESCRICAO", "Descrição", "descricao", "DESCRIÇÃO"},
		filters:    []string{"desc"},
	}
	expenseAmount = fieldSpec{
		priorities: []string{"VALOR", "Valor", "valor"},
		filters:    []string{"valor"},
	}
)

func ClientID(rec Record) string    { return clientID.get(rec) }
func ClientName(rec Record) string  { return clientName.get(rec) }
func ClientPhone(rec Record) string { return clientPhone.get(rec) }
func ClientNotes(rec Record) string { return clientNotes.get(rec) }

func ClientRegisteredAt(rec Record) string { return clientRegisteredAt.get(rec) }

func ServiceID(rec Record) string       { return serviceID.get(rec) }
func ServiceName(rec Record) string     { return serviceName.get(rec) }
func ServiceCategory(rec Record) string { return serviceCategory.get(rec) }

// ServicePrice reads the base price as cents. Missing or unparseable cells
// report zero: a zero-priced cell and an empty cell are indistinguishable
// under the falsy-is-absent lookup policy.
func ServicePrice(rec Record) core.Money {
	v, ok := servicePrice.raw(rec)
	if !ok {
		return core.Money{}
	}
	cents, ok := core.CoerceCents(v)
	if !ok {
		return core.Money{}
	}
	return core.Money{Cents: cents}
}

// ServiceActive reports whether the row marks the service as active.
// Only the spellings seen in historical rows count as active; anything
// else, including an absent cell, reads as inactive.
func ServiceActive(rec Record) bool {
	switch serviceActive.get(rec) {
	case "true", "TRUE", "Sim", "SIM", "Ativo", "ATIVO":
		return true
	default:
		return false
	}
}

func Date(rec Record) string { return rowDate.get(rec) }

func AppointmentClientRef(rec Record) string {
	// The client column held a true foreign key in some revisions and a
	// denormalized name in others; both work as a reference.
	if v := appointmentClientRef.get(rec); v != "" {
		return v
	}
	return appointmentClientName.get(rec)
}

func AppointmentClientName(rec Record) string { return appointmentClientName.get(rec) }

func AppointmentServiceRef(rec Record) string {
	if v := appointmentServiceRef.get(rec); v != "" {
		return v
	}
	return appointmentServiceName.get(rec)
}

func AppointmentServiceName(rec Record) string { return appointmentServiceName.get(rec) }

// AppointmentAmount reads the row total as cents, zero when unparseable.
func AppointmentAmount(rec Record) core.Money {
	return coerceAmount(appointmentAmount, rec)
}

func PaymentMethod(rec Record) string { return paymentMethod.get(rec) }
func Notes(rec Record) string         { return notes.get(rec) }

func ExpenseCategory(rec Record) string    { return expenseCategory.get(rec) }
func ExpenseDescription(rec Record) string { return expenseDescription.get(rec) }

// ExpenseAmount reads the expense amount as cents, zero when unparseable.
func ExpenseAmount(rec Record) core.Money {
	return coerceAmount(expenseAmount, rec)
}

func coerceAmount(fs fieldSpec, rec Record) core.Money {
	v, ok := fs.raw(rec)
	if !ok {
		return core.Money{}
	}
	cents, ok := core.CoerceCents(v)
	if !ok {
		return core.Money{}
	}
	return core.Money{Cents: cents}
}

// LooksSynthesized reports whether a reference value looks like a
// backend-synthesized identifier for the given kind rather than a raw name.
func LooksSynthesized(ref string, kind core.Kind) bool {
	prefix := kind.IDPrefix()
	return prefix != "" && strings.HasPrefix(ref, prefix)
}
