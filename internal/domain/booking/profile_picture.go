package booking

import (
	"fmt"
	"math/rand/v2"
)

const avatarCount = 99

type ProfilePicturePicker interface {
	Pick() string
}

// AvatarPicker hands out one of the public placeholder avatars.
type AvatarPicker struct {
	intN func(n int) int
}

func NewAvatarPicker() *AvatarPicker {
	return &AvatarPicker{intN: rand.IntN}
}

func NewAvatarPickerWith(intN func(n int) int) *AvatarPicker {
	return &AvatarPicker{intN: intN}
}

func (p *AvatarPicker) Pick() string {
	return fmt.Sprintf("https://avatar.iran.liara.run/public/%d.png", p.intN(avatarCount)+1)
}
