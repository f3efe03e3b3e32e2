package dto

type SlotDTO struct {
	Label string `json:"label"`
	State string `json:"state"`
	Color string `json:"color"`
}

type AppointmentListDTO struct {
	ID      uint   `json:"id"`
	Inicio  string `json:"inicio"`
	Fim     string `json:"fim"`
	Cliente string `json:"cliente"`
	Status  string `json:"status"`
	Itens   int    `json:"itens"`
}

type DayViewDTO struct {
	Date         string               `json:"date"`
	Slots        []SlotDTO            `json:"slots"`
	Appointments []AppointmentListDTO `json:"appointments"`
}
