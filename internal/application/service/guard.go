package service

import "log"

func recovered(op string) {
	if r := recover(); r != nil {
		log.Printf("service: %s failed: %v", op, r)
	}
}

type guardedSound struct {
	next Sound
}

func (g guardedSound) PlaySound(clip ClipID, volume float64, loop bool) {
	defer recovered("play " + string(clip))
	g.next.PlaySound(clip, volume, loop)
}

type guardedDisplay struct {
	next Display
}

func (g guardedDisplay) SetHealthPercentage(pct float64) {
	defer recovered("health display")
	g.next.SetHealthPercentage(pct)
}

func (g guardedDisplay) SetCoinCount(n int) {
	defer recovered("coin display")
	g.next.SetCoinCount(n)
}

func (g guardedDisplay) SetBottleCount(n int) {
	defer recovered("bottle display")
	g.next.SetBottleCount(n)
}

func (g guardedDisplay) SetBossHealthPercentage(pct float64) {
	defer recovered("boss health display")
	g.next.SetBossHealthPercentage(pct)
}

type guardedLifecycle struct {
	next Lifecycle
}

func (g guardedLifecycle) OnGameEnded(o Outcome) {
	defer recovered("game end")
	g.next.OnGameEnded(o)
}
