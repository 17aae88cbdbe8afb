package guikit

import (
	"errors"
	"fmt"
)

// WithContainer pushes id onto the host's container stack, runs fn and pops
// again. The pop runs on every exit path, including a panic in fn.
//
//	err := guikit.WithContainer(host, form.Window, func() error {
//	    _, err := host.Add(guikit.KindText, guikit.WithValue("Name"))
//	    return err
//	})
func WithContainer(cs ContainerStack, id ID, fn func() error) (err error) {
	if err := cs.PushContainer(id); err != nil {
		return fmt.Errorf("guikit: push container %d: %w", id, err)
	}
	defer func() {
		if popErr := cs.PopContainer(); popErr != nil {
			err = errors.Join(err, fmt.Errorf("guikit: pop container %d: %w", id, popErr))
		}
	}()
	return fn()
}

// FindContainer returns the nearest ancestor of item whose kind is kind.
// The item itself is never a match. The walk stops at the top-level window
// (or at a root with no parent) and reports false.
func FindContainer(t Tree, item ID, kind Kind) (ID, bool, error) {
	want, isContainer := containerNames[kind]
	if !isContainer {
		return 0, false, fmt.Errorf("guikit: find container %s: %w", kind, ErrNotContainer)
	}
	top := containerNames[topContainer]

	first := true
	for cur := item; ; {
		name, err := ItemName(t, cur)
		if err != nil {
			return 0, false, err
		}
		if !first && name == want {
			logger.Debug("container found", "item", item, "kind", kind, "container", cur)
			return cur, true, nil
		}
		if name == top {
			return 0, false, nil
		}
		first = false

		parent, err := t.Parent(cur)
		if err != nil {
			return 0, false, err
		}
		if parent == 0 {
			return 0, false, nil
		}
		cur = parent
	}
}
