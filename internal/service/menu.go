package service

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

// MenuService handles the menu tree
type MenuService struct {
	repo repository.MenuRepository
}

// NewMenuService creates a new menu service
func NewMenuService(repo repository.MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

// Menu returns the whole tree
func (s *MenuService) Menu(ctx context.Context) (domain.Menu, error) {
	return s.repo.Get(ctx)
}

// Find looks a node up by id or text anywhere in the tree
func (s *MenuService) Find(ctx context.Context, key string) (domain.Node, error) {
	menu, err := s.repo.Get(ctx)
	if err != nil {
		return domain.Node{}, err
	}
	node := menu.Find(key)
	if node == nil {
		return domain.Node{}, fmt.Errorf("button %q: %w", key, domain.ErrNotFound)
	}
	return *node, nil
}

// HasID reports whether id is used anywhere in the tree
func (s *MenuService) HasID(ctx context.Context, id string) (bool, error) {
	menu, err := s.repo.Get(ctx)
	if err != nil {
		return false, err
	}
	return menu.HasID(id), nil
}

// Add appends a top-level node
func (s *MenuService) Add(ctx context.Context, node domain.Node) error {
	if strings.TrimSpace(node.Text) == "" {
		return fmt.Errorf("%w: button needs a text", domain.ErrInvalidInput)
	}
	if err := validateIDs(node); err != nil {
		return err
	}
	if _, err := domain.ParseNodeKind(string(node.Kind)); err != nil {
		return err
	}
	return s.repo.Update(ctx, func(m *domain.Menu) error {
		return m.Add(node)
	})
}

// Delete removes a top-level node by id or text
func (s *MenuService) Delete(ctx context.Context, key string) (domain.Node, error) {
	var removed domain.Node
	err := s.repo.Update(ctx, func(m *domain.Menu) error {
		node, ok := m.RemoveTopLevel(key)
		if !ok {
			return fmt.Errorf("button %q: %w", key, domain.ErrNotFound)
		}
		removed = node
		return nil
	})
	return removed, err
}

// SetDescription sets the text shown under the node's image
func (s *MenuService) SetDescription(ctx context.Context, key, description string) (domain.Node, error) {
	return s.edit(ctx, key, func(n *domain.Node) {
		n.Description = description
	})
}

// SetImage stores an image URL or uploaded file id
func (s *MenuService) SetImage(ctx context.Context, key, ref string) (domain.Node, error) {
	return s.edit(ctx, key, func(n *domain.Node) {
		n.Image = ref
	})
}

// ConvertToRequestInfo turns the node into a request_info node
func (s *MenuService) ConvertToRequestInfo(ctx context.Context, key, prompt string) (domain.Node, error) {
	return s.edit(ctx, key, func(n *domain.Node) {
		n.ConvertToRequestInfo(prompt)
	})
}

func (s *MenuService) edit(ctx context.Context, key string, fn func(n *domain.Node)) (domain.Node, error) {
	var edited domain.Node
	err := s.repo.Update(ctx, func(m *domain.Menu) error {
		node := m.Find(key)
		if node == nil {
			return fmt.Errorf("button %q: %w", key, domain.ErrNotFound)
		}
		fn(node)
		edited = *node
		return nil
	})
	return edited, err
}

func validateIDs(node domain.Node) error {
	if err := domain.ValidateNodeID(node.ID); err != nil {
		return err
	}
	for _, child := range node.Children {
		if err := validateIDs(child); err != nil {
			return err
		}
	}
	return nil
}
