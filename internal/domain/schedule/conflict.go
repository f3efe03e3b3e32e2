package schedule

import "github.com/EspacoVitaServices/salon-scheduler/internal/models"

// Conflicts informa se o intervalo [inicio, fim) colide com algum
// agendamento existente do mesmo dia. A comparação é feita em minutos desde
// a meia-noite sobre intervalos meio-abertos: não há conflito somente quando
// fim ≤ existente.inicio ou inicio ≥ existente.fim.
func Conflicts(inicio, fim string, existing []models.Appointment) bool {
	ns := MinutesOf(inicio)
	ne := MinutesOf(fim)

	for _, ap := range existing {
		es := MinutesOf(ap.Inicio)
		ee := MinutesOf(ap.Fim)

		if !(ne <= es || ns >= ee) {
			return true
		}
	}

	return false
}
