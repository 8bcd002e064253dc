package slots

import (
	"strconv"
	"strings"
)

// ===============================
// Agrupamento por período do dia
// ===============================

type DayPart string

const (
	Morning   DayPart = "Manhã"
	Afternoon DayPart = "Tarde"
	Evening   DayPart = "Noite"
)

type Group struct {
	Part  DayPart
	Slots []string
}

// GroupByDayPart reparte os horários em manhã (<12), tarde (12–17) e noite
// (>=18), só para exibição. A ordem dentro de cada grupo segue a resposta do
// servidor; grupo vazio fica de fora. Horário ilegível é descartado.
func GroupByDayPart(slots []string) []Group {
	var morning, afternoon, evening []string

	for _, slot := range slots {
		hour, ok := hourOf(slot)
		if !ok {
			continue
		}

		switch {
		case hour < 12:
			morning = append(morning, slot)
		case hour < 18:
			afternoon = append(afternoon, slot)
		default:
			evening = append(evening, slot)
		}
	}

	var groups []Group
	for _, g := range []Group{
		{Part: Morning, Slots: morning},
		{Part: Afternoon, Slots: afternoon},
		{Part: Evening, Slots: evening},
	} {
		if len(g.Slots) > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}

func hourOf(slot string) (int, bool) {
	head, _, ok := strings.Cut(slot, ":")
	if !ok {
		return 0, false
	}
	hour, err := strconv.Atoi(head)
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}

// Display corta segundos para exibição: "09:00:00" → "09:00".
func Display(slot string) string {
	if len(slot) > 5 {
		return slot[:5]
	}
	return slot
}
