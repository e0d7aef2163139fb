package tracker

import (
	"fmt"
	"strings"

	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
)

func (t *Tracker) Groups() ([]models.Group, error) {
	return t.store.GetGroups()
}

// CreateGroup appends a new group after the existing ones.
func (t *Tracker) CreateGroup(name, color string) (models.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Group{}, fmt.Errorf("group name cannot be empty")
	}
	groups, err := t.store.GetGroups()
	if err != nil {
		return models.Group{}, err
	}
	for _, g := range groups {
		if strings.EqualFold(g.Name, name) {
			return models.Group{}, fmt.Errorf("group %q already exists", name)
		}
	}
	group := models.Group{ID: t.newID(), Name: name, Color: color, SortOrder: len(groups)}
	if err := t.store.AddGroup(group); err != nil {
		return models.Group{}, err
	}
	logger.Info("group created", "id", group.ID, "name", name)
	return group, nil
}

// ResolveGroup finds a group by ID or case-insensitive name.
func (t *Tracker) ResolveGroup(ref string) (models.Group, error) {
	groups, err := t.store.GetGroups()
	if err != nil {
		return models.Group{}, err
	}
	for _, g := range groups {
		if g.ID == ref {
			return g, nil
		}
	}
	for _, g := range groups {
		if strings.EqualFold(g.Name, ref) {
			return g, nil
		}
	}
	return models.Group{}, fmt.Errorf("group %q: %w", ref, storage.ErrNotFound)
}

func (t *Tracker) RenameGroup(ref, name string) (models.Group, error) {
	group, err := t.ResolveGroup(ref)
	if err != nil {
		return models.Group{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Group{}, fmt.Errorf("group name cannot be empty")
	}
	group.Name = name
	if err := t.store.UpdateGroup(group); err != nil {
		return models.Group{}, err
	}
	return group, nil
}

// DeleteGroup removes a group; its habits become ungrouped.
func (t *Tracker) DeleteGroup(ref string) error {
	group, err := t.ResolveGroup(ref)
	if err != nil {
		return err
	}
	if err := t.store.DeleteGroup(group.ID); err != nil {
		return err
	}
	logger.Info("group deleted", "id", group.ID)
	return nil
}

// AssignGroup moves a habit into a group; an empty group ref ungroups it.
func (t *Tracker) AssignGroup(habitRef, groupRef string) error {
	habit, err := t.ResolveHabit(habitRef)
	if err != nil {
		return err
	}
	habit.GroupID = ""
	if groupRef != "" {
		group, err := t.ResolveGroup(groupRef)
		if err != nil {
			return err
		}
		habit.GroupID = group.ID
	}
	return t.store.UpdateHabit(habit)
}
