package server

import (
	"fmt"
	"strings"

	"pixel-avatar/internal/avatar"
	"pixel-avatar/internal/render"
)

// action is one editor keypress.
type action int

const (
	actionNone action = iota
	actionSkin
	actionHairStyle
	actionHairColor
	actionShirtStyle
	actionShirtColor
	actionPantsStyle
	actionPantsColor
	actionShoeColor
	actionAccessory
	actionNextPose
	actionPrevPose
	actionReset
	actionQuit
)

const helpLine = "k skin  h hair  c color  s shirt  t tint  p pants  l leg color  f shoes  a accessory  ←/→ pose  r reset  q quit"

// editor holds one session's character while it is being edited.
type editor struct {
	cfg  avatar.CharacterConfig
	size int
}

func newEditor(cfg avatar.CharacterConfig, size int) *editor {
	return &editor{cfg: cfg.WithDefaults(), size: size}
}

func (e *editor) apply(a action) {
	c := &e.cfg
	switch a {
	case actionSkin:
		c.SkinTone = avatar.SkinTones.Step(c.SkinTone, 1)
	case actionHairStyle:
		c.HairStyle = avatar.HairStyles.Step(c.HairStyle, 1)
	case actionHairColor:
		c.HairColor = avatar.HairColors.Step(c.HairColor, 1)
	case actionShirtStyle:
		c.ShirtStyle = avatar.ShirtStyles.Step(c.ShirtStyle, 1)
	case actionShirtColor:
		c.ShirtColor = avatar.ShirtColors.Step(c.ShirtColor, 1)
	case actionPantsStyle:
		c.PantsStyle = avatar.PantsStyles.Step(c.PantsStyle, 1)
	case actionPantsColor:
		c.PantsColor = avatar.PantsColors.Step(c.PantsColor, 1)
	case actionShoeColor:
		c.ShoeColor = avatar.ShoeColors.Step(c.ShoeColor, 1)
	case actionAccessory:
		c.Accessory = avatar.Accessories.Step(c.Accessory, 1)
	case actionNextPose:
		c.Pose = avatar.Poses.Step(c.Pose, 1)
	case actionPrevPose:
		c.Pose = avatar.Poses.Step(c.Pose, -1)
	case actionReset:
		e.cfg = avatar.DefaultCharacter
	}
}

// assignments is the command line that reproduces the current character.
func (e *editor) assignments() string {
	c := e.cfg
	return fmt.Sprintf("skinTone=%s hairStyle=%s hairColor=%s shirtStyle=%s shirtColor=%s pantsStyle=%s pantsColor=%s shoeColor=%s accessory=%s pose=%s",
		c.SkinTone, c.HairStyle, c.HairColor, c.ShirtStyle, c.ShirtColor,
		c.PantsStyle, c.PantsColor, c.ShoeColor, c.Accessory, c.Pose)
}

// view draws a full screen: avatar, current selection and key help.
// The avatar shrinks to whole-number scale 1 when the terminal is too small.
func (e *editor) view(termW, termH int) string {
	size := e.size
	rows := size / render.GridW * render.GridH / 2
	if size > termW || rows > termH-3 {
		size = render.GridW
	}

	var sb strings.Builder
	sb.WriteString(render.ClearScreen())
	sb.WriteString(render.MoveTo(1, 1))
	sb.WriteString(render.ANSI(avatar.Compose(e.cfg, float64(size)), render.TransparentPixel()))
	sb.WriteString(e.assignments())
	sb.WriteString("\r\n")
	sb.WriteString(helpLine)
	return sb.String()
}
