// Package app wires the repositories and services behind the user
// facing operations shared by the CLI and the Telegram bot.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fournil/internal/auth"
	"fournil/internal/clipper"
	"fournil/internal/inventory"
	"fournil/internal/planning"
	"fournil/internal/recipe"
	"fournil/internal/shopping"
)

// ErrNotAuthenticated is returned when a token resolves to no session.
var ErrNotAuthenticated = fmt.Errorf("not authenticated")

// App holds the application's dependencies.
type App struct {
	Auth      *auth.Service
	Recipes   *recipe.Repository
	Inventory *inventory.Repository
	Plans     *planning.Repository
	Shopping  *shopping.Service
	Clipper   *clipper.Clipper
}

// NewApp creates and initializes a new App instance.
func NewApp(
	authService *auth.Service,
	recipeRepo *recipe.Repository,
	inventoryRepo *inventory.Repository,
	planRepo *planning.Repository,
	shoppingService *shopping.Service,
	recipeClipper *clipper.Clipper,
) *App {
	return &App{
		Auth:      authService,
		Recipes:   recipeRepo,
		Inventory: inventoryRepo,
		Plans:     planRepo,
		Shopping:  shoppingService,
		Clipper:   recipeClipper,
	}
}

// Authenticate resolves a session token to the owning user ID.
func (a *App) Authenticate(ctx context.Context, token string) (string, error) {
	session, err := a.Auth.GetSession(ctx, token)
	if err != nil {
		return "", err
	}
	if session == nil {
		return "", ErrNotAuthenticated
	}
	return session.UserID, nil
}

// OwnerByEmail resolves an account email to its user ID, used by the
// Telegram allow-list mapping.
func (a *App) OwnerByEmail(ctx context.Context, email string) (string, error) {
	user, err := a.Auth.UserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", fmt.Errorf("no account for %s", email)
	}
	return user.ID, nil
}

// ShoppingWindow defaults an empty date range to today through seven
// days out, and checks the format of explicit bounds.
func ShoppingWindow(from, to string) (string, string, error) {
	if from == "" && to == "" {
		today := time.Now()
		return today.Format("2006-01-02"), today.AddDate(0, 0, 7).Format("2006-01-02"), nil
	}
	for _, d := range []string{from, to} {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return "", "", fmt.Errorf("invalid date %q: expected YYYY-MM-DD", d)
		}
	}
	return from, to, nil
}

// GenerateShoppingList computes the purchase list for the window.
func (a *App) GenerateShoppingList(ctx context.Context, ownerID, from, to string) ([]shopping.IngredientNeed, error) {
	from, to, err := ShoppingWindow(from, to)
	if err != nil {
		return nil, err
	}
	return a.Shopping.Generate(ctx, ownerID, from, to)
}

// ClipRecipe imports a recipe from a URL and saves it without
// ingredient lines; the raw ingredient text is returned so the user can
// link stocked ingredients afterwards.
func (a *App) ClipRecipe(ctx context.Context, ownerID, url string) (recipe.Recipe, []string, error) {
	clipped, err := a.Clipper.ClipURL(ctx, url)
	if err != nil {
		return recipe.Recipe{}, nil, fmt.Errorf("failed to clip recipe: %w", err)
	}

	description := clipped.Description
	if description == "" {
		description = fmt.Sprintf("Importée depuis %s", url)
	}

	created, err := a.Recipes.Create(ctx, recipe.Recipe{
		UserID:            ownerID,
		Name:              clipped.Name,
		Description:       strings.TrimSpace(description),
		PrepTimeMinutes:   clipped.PrepTimeMinutes,
		RestTimeMinutes:   clipped.RestTimeMinutes,
		BakingTimeMinutes: clipped.BakingTimeMinutes,
		YieldQuantity:     clipped.YieldQuantity,
		YieldUnit:         clipped.YieldUnit,
	}, nil)
	if err != nil {
		return recipe.Recipe{}, nil, err
	}

	return created, clipped.Ingredients, nil
}
