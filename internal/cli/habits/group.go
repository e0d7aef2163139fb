package habits

import (
	"github.com/julianstephens/habitual/internal/cli"
)

type GroupCmd struct {
	Add    GroupAddCmd    `cmd:"" help:"Create a habit group."`
	List   GroupListCmd   `cmd:"" help:"List groups with their habits."`
	Rename GroupRenameCmd `cmd:"" help:"Rename a group."`
	Delete GroupDeleteCmd `cmd:"" help:"Delete a group; its habits become ungrouped."`
}

type GroupAddCmd struct {
	Name  string `arg:"" help:"Group name."`
	Color string `help:"Hex color for the group header."`
}

func (c *GroupAddCmd) Run(ctx *cli.Context) error {
	g, err := ctx.Tracker.CreateGroup(c.Name, c.Color)
	if err != nil {
		return err
	}
	ctx.Printf("Added group: %s (ID: %s)\n", g.Name, g.ID)
	return nil
}

type GroupListCmd struct{}

func (c *GroupListCmd) Run(ctx *cli.Context) error {
	groups, err := ctx.Tracker.Groups()
	if err != nil {
		return err
	}
	habits, err := ctx.Tracker.Habits(false)
	if err != nil {
		return err
	}

	members := map[string][]string{}
	for _, h := range habits {
		members[h.GroupID] = append(members[h.GroupID], h.Name)
	}

	if len(groups) == 0 {
		ctx.Println("No groups found.")
	}
	for _, g := range groups {
		ctx.Println(cli.Paint(cli.TitleStyle, g.Name))
		for _, name := range members[g.ID] {
			ctx.Printf("  %s\n", name)
		}
	}
	if ungrouped := members[""]; len(ungrouped) > 0 && len(groups) > 0 {
		ctx.Println(cli.Paint(cli.MutedStyle, "Ungrouped"))
		for _, name := range ungrouped {
			ctx.Printf("  %s\n", name)
		}
	}
	return nil
}

type GroupRenameCmd struct {
	Group string `arg:"" help:"Group name or ID."`
	Name  string `arg:"" help:"New name."`
}

func (c *GroupRenameCmd) Run(ctx *cli.Context) error {
	g, err := ctx.Tracker.RenameGroup(c.Group, c.Name)
	if err != nil {
		return err
	}
	ctx.Printf("Renamed group to: %s\n", g.Name)
	return nil
}

type GroupDeleteCmd struct {
	Group string `arg:"" help:"Group name or ID."`
}

func (c *GroupDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Tracker.DeleteGroup(c.Group); err != nil {
		return err
	}
	ctx.Printf("Deleted group: %s\n", c.Group)
	return nil
}
