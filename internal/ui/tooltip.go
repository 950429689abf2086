package ui

import "github.com/roguequest/roguequest/internal/geom"

// UpdateTooltip answers a click: it shows the name (and health) of the
// entity under the cursor next to it, or hides the tooltip when there is
// nothing there.
func UpdateTooltip(ctx *Context) error {
	click := ctx.Input.Click
	if click == nil {
		return nil
	}
	box, err := ctx.Tree.SingleRole(RoleTooltipBox)
	if err != nil {
		return err
	}
	text, err := ctx.Tree.SingleRole(RoleTooltipText)
	if err != nil {
		return err
	}
	camera, err := ctx.World.Camera()
	if err != nil {
		return err
	}

	cursor := geom.Vec2{X: click.X, Y: click.Y}
	g := ScreenToGrid(cursor, ctx.Window, camera, ctx.Dims)
	picked, ok := Nearest(g, ctx.World.NamedEntities())
	if !ok {
		box.Visible = false
		text.Visible = false
		return nil
	}

	text.Sections[0].Text = TooltipLabel(picked)
	box.Style.Left = Px(click.X - ctx.TooltipOffset)
	box.Style.Bottom = Px(click.Y)
	box.Visible = true
	text.Visible = true
	return nil
}

// HideTooltip hides the tooltip whatever its state.
func HideTooltip(ctx *Context) error {
	for _, role := range []Role{RoleTooltipText, RoleTooltipBox} {
		for _, id := range ctx.Tree.FindRole(role) {
			ctx.Tree.SetVisible(id, false)
		}
	}
	return nil
}
