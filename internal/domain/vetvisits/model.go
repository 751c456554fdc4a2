package vetvisits

import "time"

// VetVisit registra una visita al veterinario. Inmutable una vez creada.
type VetVisit struct {
	ID          int64
	Date        time.Time
	Description string
}
