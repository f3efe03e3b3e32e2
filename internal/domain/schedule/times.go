package schedule

import "time"

const (
	TimeLayout = "15:04"
	DateLayout = "02/01/2006"
)

// MinutesOf converte "HH:MM" em minutos desde a meia-noite. Entradas fora
// do formato valem 0 minutos, comportamento herdado dos registros antigos;
// a camada de edição rejeita horários malformados antes de chegar aqui.
func MinutesOf(hm string) int {
	t, err := time.Parse(TimeLayout, hm)
	if err != nil {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}

func ValidTime(hm string) bool {
	_, err := time.Parse(TimeLayout, hm)
	return err == nil
}

func ParseDate(d string) (time.Time, error) {
	return time.Parse(DateLayout, d)
}

func ValidDate(d string) bool {
	_, err := ParseDate(d)
	return err == nil
}
