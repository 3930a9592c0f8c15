package service

// FlashLevel classifies a user-visible message.
type FlashLevel string

const (
	FlashSuccess FlashLevel = "success"
	FlashError   FlashLevel = "error"
)

// Flash is supplied by the hosting view layer to surface outcomes to the
// user. Passing nil disables flashing.
type Flash func(level FlashLevel, message string)

func nopFlash(FlashLevel, string) {}
