package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

var Health = donburi.NewComponentType[HealthData]()

// Damage subtracts n and never lets health drop below zero
func (h *HealthData) Damage(n int) {
	h.Current -= n
	if h.Current < 0 {
		h.Current = 0
	}
}

func (h *HealthData) Depleted() bool {
	return h.Current <= 0
}
