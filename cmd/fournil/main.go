package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/joho/godotenv"

	"fournil/internal/app"
	"fournil/internal/auth"
	"fournil/internal/clipper"
	"fournil/internal/config"
	"fournil/internal/database"
	"fournil/internal/inventory"
	"fournil/internal/planning"
	"fournil/internal/recipe"
	"fournil/internal/shopping"
)

func main() {
	ctx := context.Background()

	// Optional .env for local development.
	_ = godotenv.Load()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	authService := auth.NewService(db.SQL, cfg.JWTSecret, cfg.SessionTTL)
	recipeRepo := recipe.NewRepository(db.SQL)
	inventoryRepo := inventory.NewRepository(db.SQL)
	planRepo := planning.NewRepository(db.SQL, recipeRepo)
	shoppingService := shopping.NewService(planRepo, inventoryRepo)
	recipeClipper := clipper.NewClipper()

	application := app.NewApp(authService, recipeRepo, inventoryRepo, planRepo, shoppingService, recipeClipper)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "signup":
		runSignup(ctx, application)
	case "login":
		runLogin(ctx, application)
	case "logout":
		runLogout(ctx, application)
	case "recipes":
		runRecipes(ctx, application)
	case "recipe-add":
		runRecipeAdd(ctx, application)
	case "recipe-show":
		runRecipeShow(ctx, application)
	case "recipe-delete":
		runRecipeDelete(ctx, application)
	case "clip":
		runClip(ctx, application)
	case "stock":
		runStock(ctx, application)
	case "stock-set":
		runStockSet(ctx, application)
	case "ingredient-add":
		runIngredientAdd(ctx, application)
	case "ingredient-delete":
		runIngredientDelete(ctx, application)
	case "plans":
		runPlans(ctx, application)
	case "plan-add":
		runPlanAdd(ctx, application)
	case "plan-status":
		runPlanStatus(ctx, application)
	case "plan-delete":
		runPlanDelete(ctx, application)
	case "shopping":
		runShopping(ctx, application)
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: fournil <command> [arguments]")
	fmt.Println("\nAccount:")
	fmt.Println("  signup             Create an account")
	fmt.Println("  login              Open a session")
	fmt.Println("  logout             Close the current session")
	fmt.Println("\nRecipes:")
	fmt.Println("  recipes            List recipes")
	fmt.Println("  recipe-add         Create a recipe with its ingredient lines")
	fmt.Println("  recipe-show        Show a recipe with timings and ingredients")
	fmt.Println("  recipe-delete      Delete a recipe")
	fmt.Println("  clip               Import a recipe from a URL")
	fmt.Println("\nInventory:")
	fmt.Println("  stock              Show the ingredient stock")
	fmt.Println("  stock-set          Update the stock quantity of an ingredient")
	fmt.Println("  ingredient-add     Add an ingredient")
	fmt.Println("  ingredient-delete  Delete an ingredient")
	fmt.Println("\nPlanning:")
	fmt.Println("  plans              Show the production schedule")
	fmt.Println("  plan-add           Schedule a recipe on a date")
	fmt.Println("  plan-status        Move a plan between planned/in_progress/completed")
	fmt.Println("  plan-delete        Delete a plan")
	fmt.Println("\nShopping:")
	fmt.Println("  shopping           Generate the shopping list for a date window")
}

// tokenPath is where the CLI caches the session token between runs.
func tokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".config", "fournil", "token")
}

func saveToken(token string) error {
	path := tokenPath()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(token), 0600)
}

func loadToken() string {
	data, err := os.ReadFile(tokenPath())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// requireOwner resolves the cached session token to a user ID or exits.
func requireOwner(ctx context.Context, a *app.App) string {
	token := loadToken()
	if token == "" {
		log.Fatal("Not logged in. Run: fournil login -email ... -password ...")
	}
	ownerID, err := a.Authenticate(ctx, token)
	if err != nil {
		if err == app.ErrNotAuthenticated {
			log.Fatal("Session expired. Run: fournil login -email ... -password ...")
		}
		log.Fatalf("Failed to authenticate: %v", err)
	}
	return ownerID
}

func runSignup(ctx context.Context, a *app.App) {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	email := fs.String("email", "", "Account email")
	password := fs.String("password", "", "Account password (min. 8 characters)")
	fs.Parse(os.Args[2:])

	user, err := a.Auth.SignUp(ctx, *email, *password)
	if err != nil {
		log.Fatalf("Signup failed: %v", err)
	}
	fmt.Printf("Account created for %s\n", user.Email)
}

func runLogin(ctx context.Context, a *app.App) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "Account email")
	password := fs.String("password", "", "Account password")
	fs.Parse(os.Args[2:])

	token, err := a.Auth.SignIn(ctx, *email, *password)
	if err != nil {
		log.Fatalf("Login failed: %v", err)
	}
	if err := saveToken(token); err != nil {
		log.Fatalf("Failed to store session token: %v", err)
	}
	fmt.Println("Logged in.")
}

func runLogout(ctx context.Context, a *app.App) {
	token := loadToken()
	if token == "" {
		fmt.Println("Not logged in.")
		return
	}
	if err := a.Auth.SignOut(ctx, token); err != nil {
		log.Fatalf("Logout failed: %v", err)
	}
	os.Remove(tokenPath())
	fmt.Println("Logged out.")
}

func runRecipes(ctx context.Context, a *app.App) {
	fs := flag.NewFlagSet("recipes", flag.ExitOnError)
	sort := fs.String("sort", "name", "Sort order: name or created")
	fs.Parse(os.Args[2:])

	ownerID := requireOwner(ctx, a)
	recipes, err := a.Recipes.List(ctx, ownerID, recipe.SortOrder(*sort))
	if err != nil {
		log.Fatalf("Failed to list recipes: %v", err)
	}

	if len(recipes) == 0 {
		fmt.Println("No recipes yet. Create one with: fournil recipe-add")
		return
	}
	for _, rec := range recipes {
		fmt.Printf("%s  %-30s %s  (%g %s)\n",
			rec.ID, rec.Name, planning.FormatDuration(rec.TotalTimeMinutes()),
			rec.YieldQuantity, rec.YieldUnit)
	}
}

func runRecipeAdd(ctx context.Context, a *app.App) {
	fs := flag.NewFlagSet("recipe-add", flag.ExitOnError)
	name := fs.String("name", "", "Recipe name")
	description := fs.String("desc", "", "Optional description")
	prep := fs.Int("prep", 0, "Preparation time in minutes")
	rest := fs.Int("rest", 0, "Rest time in minutes")
	bake := fs.Int("bake", 0, "Baking time in minutes")
	temperature := fs.Int("temp", 0, "Baking temperature (0 = unset)")
	yieldQty := fs.Float64("yield", 1, "Yield quantity")
	yieldUnit := fs.String("yield-unit", "pièces", "Yield unit")
	ingredients := fs.String("ingredients", "", "Ingredient lines as id:qty,id:qty")
	fs.Parse(os.Args[2:])

	ownerID := requireOwner(ctx, a)

	lines, err := parseLines(*ingredients)
	if err != nil {
		log.Fatalf("Invalid -ingredients: %v", err)
	}

	rec := recipe.Recipe{
		UserID:            ownerID,
		Name:              *name,
		Description:       *description,
		PrepTimeMinutes:   *prep,
		RestTimeMinutes:   *rest,
		BakingTimeMinutes: *bake,
		YieldQuantity:     *yieldQty,
		YieldUnit:         *yieldUnit,
	}
	if *temperature > 0 {
		rec.BakingTemperature = temperature
	}

	created, err := a.Recipes.Create(ctx, rec, lines)
	if err != nil {
		log.Fatalf("Failed to create recipe: %v", err)
	}
	fmt.Printf("Recipe %q created (%s)\n", created.Name, created.ID)
}

// parseLines parses "id:qty,id:qty" into recipe line inputs.
func parseLines(raw string) ([]recipe.LineInput, error) {
	if raw == "" {
		return nil, nil
	}
	var lines []recipe.LineInput
	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("expected id:qty, got %q", pair)
		}
		var qty float64
		if _, err := fmt.Sscanf(parts[1], "%g", &qty); err != nil {
			return nil, fmt.Errorf("invalid quantity in %q: %w", pair, err)
		}
		lines = append(lines, recipe.LineInput{IngredientID: parts[0], Quantity: qty})
	}
	return lines, nil
}

func runRecipeShow(ctx context.Context, a *app.App) {
	fs := flag.NewFlagSet("recipe-show", flag.ExitOnError)
	id := fs.String("id", "", "Recipe ID")
	fs.Parse(os.Args[2:])

	ownerID := requireOwner(ctx, a)
	rec, err := a.Recipes.Get(ctx, ownerID, *id)
	if err != nil {
		log.Fatalf("Failed to get recipe: %v", err)
	}
	if rec == nil {
		log.Fatalf("No recipe with ID %s", *id)
	}

	fmt.Printf("%s\n", rec.Name)
	if rec.Description != "" {
		fmt.Printf("%s\n", rec.Description)
	}
	fmt.Printf("Préparation %s · Repos %s · Cuisson %s · Total %s\n",
		planning.FormatDuration(rec.PrepTimeMinutes),
		planning.FormatDuration(rec.RestTimeMinutes),
		planning.FormatDuration(rec.BakingTimeMinutes),
		planning.FormatDuration(rec.TotalTimeMinutes()))
	if rec.BakingTemperature != nil {
		fmt.Printf("Four : %d°C\n", *rec.BakingTemperature)
	}
	fmt.Printf("Rendement : %g %s\n", rec.YieldQuantity, rec.YieldUnit)
	for _, line := range rec.Lines {
		fmt.Printf("  %s %s  %s\n", shopping.FormatAmount(line.Quantity), line.Unit, line.IngredientName)
	}
}

func runRecipeDelete(ctx context.Context, a *app.App) {
	fs := flag.NewFlagSet("recipe-delete", flag.ExitOnError)
	id := fs.String("id", "", "Recipe ID")
	fs.Parse(os.Args[2:])

	ownerID := requireOwner(ctx, a)
	if err := a.Recipes.Delete(ctx, ownerID, *id); err != nil {
		log.Fatalf("Failed to delete recipe: %v", err)
	}
	fmt.Println("Recipe deleted.")
}

func runClip(ctx context.Context, a *app.App) {
	fs := flag.NewFlagSet("clip", flag.ExitOnError)
	url := fs.String("url", "", "Recipe page URL")
	fs.Parse(os.Args[2:])

	ownerID := requireOwner(ctx, a)
	created, rawIngredients, err := a.ClipRecipe(ctx, ownerID, *url)
	if err != nil {
		log.Fatalf("Failed to import recipe: %v", err)
	}

	fmt.Printf("Recipe %q imported (%s)\n", created.Name, created.ID)
	if len(rawIngredients) > 0 {
		fmt.Println("Ingredients found on the page (link them with recipe-add):")
		for _, line := range rawIngredients {
			fmt.Printf("  - %s\n", line)
		}
	}
}

func runStock(ctx context.Context, a *app.App) {
	ownerID := requireOwner(ctx, a)
	ingredients, err := a.Inventory.List(ctx, ownerID)
	if err != nil {
		log.Fatalf("Failed to list ingredients: %v", err)
	}

	if len(ingredients) == 0 {
		fmt.Println("No ingredients yet. Add one with: fournil ingredient-add")
		return
	}
	for _, ing := range ingredients {
		marker := ""
		if ing.LowStock() {
			marker = "  (low)"
		}
		fmt.Printf("%s  %-25s %8s %s%s\n", ing.ID, ing.Name, shopping.FormatAmount(ing.StockQuantity), ing.Unit, marker)
	}
}

func runStockSet(ctx context.Context, a *app.App) {
	fs := flag.NewFlagSet("stock-set", flag.ExitOnError)
	id := fs.String("id", "", "Ingredient ID")
	qty := fs.Float64("qty", 0, "New stock quantity")
	fs.Parse(os.Args[2:])

	ownerID := requireOwner(ctx, a)
	if err := a.Inventory.SetStock(ctx, ownerID, *id, *qty); err != nil {
		log.Fatalf("Failed to update stock: %v", err)
	}
	fmt.Println("Stock updated.")
}

func runIngredientAdd(ctx context.Context, a *app.App) {
	fs := flag.NewFlagSet("ingredient-add", flag.ExitOnError)
	name := fs.String("name", "", "Ingredient name")
	unit := fs.String("unit", "", "Unit label (g, kg, L, unité, ...)")
	stock := fs.Float64("stock", 0, "Initial stock quantity")
	fs.Parse(os.Args[2:])

	ownerID := requireOwner(ctx, a)
	ing, err := a.Inventory.Create(ctx, inventory.Ingredient{
		UserID:        ownerID,
		Name:          *name,
		Unit:          *unit,
		StockQuantity: *stock,
	})
	if err != nil {
		log.Fatalf("Failed to add ingredient: %v", err)
	}
	fmt.Printf("Ingredient %q added (%s)\n", ing.Name, ing.ID)
}

func runIngredientDelete(ctx context.Context, a *app.App) {
	fs := flag.NewFlagSet("ingredient-delete", flag.ExitOnError)
	id := fs.String("id", "", "Ingredient ID")
	fs.Parse(os.Args[2:])

	ownerID := requireOwner(ctx, a)
	if err := a.Inventory.Delete(ctx, ownerID, *id); err != nil {
		log.Fatalf("Failed to delete ingredient: %v", err)
	}
	fmt.Println("Ingredient deleted.")
}

func runPlans(ctx context.Context, a *app.App) {
	ownerID := requireOwner(ctx, a)
	plans, err := a.Plans.List(ctx, ownerID)
	if err != nil {
		log.Fatalf("Failed to list plans: %v", err)
	}

	if len(plans) == 0 {
		fmt.Println("No production planned. Schedule one with: fournil plan-add")
		return
	}

	dates, grouped := planning.GroupByDate(plans)
	for _, date := range dates {
		fmt.Printf("%s\n", date)
		for _, plan := range grouped[date] {
			end, err := plan.EndTime()
			if err != nil {
				end = "?"
			}
			fmt.Printf("  %s  %s → %s  %-25s ×%g  [%s]\n",
				plan.ID, plan.StartTime, end, plan.RecipeName,
				plan.QuantityMultiplier, plan.Status)
		}
	}
}

func runPlanAdd(ctx context.Context, a *app.App) {
	fs := flag.NewFlagSet("plan-add", flag.ExitOnError)
	recipeID := fs.String("recipe", "", "Recipe ID")
	date := fs.String("date", "", "Planned date (YYYY-MM-DD)")
	start := fs.String("time", "06:00", "Start time (HH:MM)")
	multiplier := fs.Float64("qty", 1, "Quantity multiplier")
	notes := fs.String("notes", "", "Optional notes")
	fs.Parse(os.Args[2:])

	ownerID := requireOwner(ctx, a)
	plan, err := a.Plans.Create(ctx, planning.ProductionPlan{
		UserID:             ownerID,
		RecipeID:           *recipeID,
		PlannedDate:        *date,
		StartTime:          *start,
		QuantityMultiplier: *multiplier,
		Notes:              *notes,
	})
	if err != nil {
		log.Fatalf("Failed to schedule plan: %v", err)
	}
	fmt.Printf("Plan scheduled for %s at %s (%s)\n", plan.PlannedDate, plan.StartTime, plan.ID)
}

func runPlanStatus(ctx context.Context, a *app.App) {
	fs := flag.NewFlagSet("plan-status", flag.ExitOnError)
	id := fs.String("id", "", "Plan ID")
	status := fs.String("status", "", "New status: planned, in_progress or completed")
	fs.Parse(os.Args[2:])

	ownerID := requireOwner(ctx, a)
	if err := a.Plans.SetStatus(ctx, ownerID, *id, planning.Status(*status)); err != nil {
		log.Fatalf("Failed to update plan status: %v", err)
	}
	fmt.Println("Plan status updated.")
}

func runPlanDelete(ctx context.Context, a *app.App) {
	fs := flag.NewFlagSet("plan-delete", flag.ExitOnError)
	id := fs.String("id", "", "Plan ID")
	fs.Parse(os.Args[2:])

	ownerID := requireOwner(ctx, a)
	if err := a.Plans.Delete(ctx, ownerID, *id); err != nil {
		log.Fatalf("Failed to delete plan: %v", err)
	}
	fmt.Println("Plan deleted.")
}

func runShopping(ctx context.Context, a *app.App) {
	fs := flag.NewFlagSet("shopping", flag.ExitOnError)
	from := fs.String("from", "", "Window start date (YYYY-MM-DD, default today)")
	to := fs.String("to", "", "Window end date (YYYY-MM-DD, default today+7)")
	copyFlag := fs.Bool("copy", false, "Copy the list to the system clipboard")
	fs.Parse(os.Args[2:])

	ownerID := requireOwner(ctx, a)
	list, err := a.GenerateShoppingList(ctx, ownerID, *from, *to)
	if err != nil {
		log.Fatalf("Failed to generate shopping list: %v", err)
	}

	if len(list) == 0 {
		fmt.Println("Nothing to buy: stock covers the planned production.")
		return
	}

	fmt.Printf("%-25s %12s %12s %12s\n", "Ingrédient", "Besoin", "En stock", "À acheter")
	for _, item := range list {
		fmt.Printf("%-25s %9s %s %9s %s %9s %s\n",
			item.Name,
			shopping.FormatAmount(item.TotalNeeded), item.Unit,
			shopping.FormatAmount(item.InStock), item.Unit,
			shopping.FormatAmount(item.ToBuy), item.Unit)
	}

	if *copyFlag {
		if err := clipboard.WriteAll(shopping.ExportText(list)); err != nil {
			log.Fatalf("Failed to copy to clipboard: %v", err)
		}
		fmt.Println("\nList copied to the clipboard.")
	}
}
