package enemy

import (
	"context"
	"fmt"

	"github.com/simukka/starship-sorades-3d/scene"
	"golang.org/x/sync/errgroup"
)

// Asset names.
const (
	HullModelName   = "enemy_shooting_beta"
	CannonModelName = "enemy_shooting_cannon"
)

// Resources are the loaded assets a ShootingBeta is assembled from.
type Resources struct {
	Hull             *scene.Model
	CannonModelRight *scene.Model
	CannonModelLeft  *scene.Model
}

// LoadShootingResources fetches the hull and both cannon models concurrently.
// Any failure fails the whole load.
func LoadShootingResources(ctx context.Context, loader scene.ModelLoader) (*Resources, error) {
	res := &Resources{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		m, err := loader.LoadModel(ctx, HullModelName)
		if err != nil {
			return fmt.Errorf("load hull: %w", err)
		}
		res.Hull = m
		return nil
	})

	g.Go(func() error {
		m, err := loader.LoadModel(ctx, CannonModelName)
		if err != nil {
			return fmt.Errorf("load right cannon: %w", err)
		}
		res.CannonModelRight = m
		return nil
	})
	g.Go(func() error {
		m, err := loader.LoadModel(ctx, CannonModelName)
		if err != nil {
			return fmt.Errorf("load left cannon: %w", err)
		}
		res.CannonModelLeft = m
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// forInstance gives a new ship its own copies of the cannon models. The hull
// is cloned by whoever builds the ship and is left unset here.
func (r *Resources) forInstance() *Resources {
	if r == nil {
		return &Resources{}
	}
	out := &Resources{}
	if r.CannonModelRight != nil {
		out.CannonModelRight = r.CannonModelRight.Clone()
	}
	if r.CannonModelLeft != nil {
		out.CannonModelLeft = r.CannonModelLeft.Clone()
	}
	return out
}
