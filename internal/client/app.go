package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/Zeafen/Recipe-Sharing-sub002/internal/adapter"
	"github.com/Zeafen/Recipe-Sharing-sub002/internal/logger"
	"github.com/Zeafen/Recipe-Sharing-sub002/models"
)

type command struct {
	usage string
	run   func(ctx context.Context, args []string) error
}

type App struct {
	api adapter.RecipeAPI
	out io.Writer

	readFile func(name string) ([]byte, error)
	commands map[string]command

	logger *logger.Logger
}

func NewApp(api adapter.RecipeAPI, out io.Writer, logger *logger.Logger) *App {
	a := &App{
		api:      api,
		out:      out,
		readFile: os.ReadFile,
		logger:   logger,
	}

	a.commands = map[string]command{
		"version":    {"version", a.version},
		"register":   {"register -login L -password P [-nickname N]", a.register},
		"login":      {"login -login L -password P", a.login},
		"me":         {"me", a.me},
		"profile":    {"profile [-nickname N] [-image URL]", a.profile},
		"creators":   {"creators [-nickname N]", a.creators},
		"creator":    {"creator ID", a.creator},
		"recipes":    {"recipes [-name N] [-creator ID]", a.recipes},
		"recipe":     {"recipe ID", a.recipe},
		"create":     {"create FILE.json", a.create},
		"update":     {"update FILE.json", a.update},
		"delete":     {"delete ID", a.delete},
		"filters":    {"filters [RECIPE_ID]", a.filters},
		"attach":     {"attach RECIPE_ID VALUE", a.attach},
		"detach":     {"detach RECIPE_ID VALUE", a.detach},
		"favorites":  {"favorites [-name N]", a.favorites},
		"favorite":   {"favorite RECIPE_ID", a.favorite},
		"unfavorite": {"unfavorite RECIPE_ID", a.unfavorite},
		"follow":     {"follow CREATOR_ID", a.follow},
		"unfollow":   {"unfollow CREATOR_ID", a.unfollow},
		"upload":     {"upload IMAGE_FILE", a.upload},
	}

	return a
}

// Run executes args[0] with the remaining arguments.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return ErrUsage
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	if err := cmd.run(ctx, args[1:]); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	return nil
}

func (a *App) printUsage() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, "usage: recipes-client COMMAND [ARGS]")
	for _, name := range names {
		fmt.Fprintf(a.out, "  %s\n", a.commands[name].usage)
	}
}

func (a *App) print(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, string(data))
	return err
}

// printChanged prints the outcome of a relation call.
func (a *App) printChanged(changed bool, yes, no string) error {
	if changed {
		_, err := fmt.Fprintln(a.out, yes)
		return err
	}
	_, err := fmt.Fprintln(a.out, no)
	return err
}

// positional checks that exactly n positional arguments were given.
func positional(args []string, n int) ([]string, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%w: expected %d argument(s), got %d", ErrUsage, n, len(args))
	}
	return args, nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func (a *App) version(ctx context.Context, _ []string) error {
	v, err := a.api.Version(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, v)
	return err
}

func (a *App) credentials(name string, args []string, withNickname bool) (models.Credentials, error) {
	var c models.Credentials
	fs := newFlagSet(name)
	fs.StringVar(&c.Login, "login", "", "account login")
	fs.StringVar(&c.Password, "password", "", "account password")
	if withNickname {
		fs.StringVar(&c.Nickname, "nickname", "", "public nickname")
	}
	if err := fs.Parse(args); err != nil {
		return c, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if c.Login == "" || c.Password == "" {
		return c, fmt.Errorf("%w: -login and -password are required", ErrUsage)
	}
	return c, nil
}

func (a *App) register(ctx context.Context, args []string) error {
	c, err := a.credentials("register", args, true)
	if err != nil {
		return err
	}
	user, err := a.api.Register(ctx, c)
	if err != nil {
		return err
	}
	return a.printSession(user)
}

func (a *App) login(ctx context.Context, args []string) error {
	c, err := a.credentials("login", args, false)
	if err != nil {
		return err
	}
	user, err := a.api.Login(ctx, c)
	if err != nil {
		return err
	}
	return a.printSession(user)
}

// printSession prints the user and how to reuse the issued token.
func (a *App) printSession(user models.User) error {
	if err := a.print(user); err != nil {
		return err
	}
	_, err := fmt.Fprintf(a.out, "export ADAPTER_TOKEN=%s\n", a.api.Token())
	return err
}

func (a *App) me(ctx context.Context, _ []string) error {
	user, err := a.api.Me(ctx)
	if err != nil {
		return err
	}
	return a.print(user)
}

func (a *App) profile(ctx context.Context, args []string) error {
	fs := newFlagSet("profile")
	nickname := fs.String("nickname", "", "new nickname")
	image := fs.String("image", "", "new profile image url")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	var update models.ProfileUpdate
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "nickname":
			update.Nickname = nickname
		case "image":
			update.ImageURL = image
		}
	})
	if update.IsEmpty() {
		return fmt.Errorf("%w: nothing to update", ErrUsage)
	}

	user, err := a.api.UpdateProfile(ctx, update)
	if err != nil {
		return err
	}
	return a.print(user)
}

func (a *App) creators(ctx context.Context, args []string) error {
	fs := newFlagSet("creators")
	nickname := fs.String("nickname", "", "nickname substring")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	creators, err := a.api.GetCreators(ctx, *nickname)
	if err != nil {
		return err
	}
	return a.print(creators)
}

func (a *App) creator(ctx context.Context, args []string) error {
	args, err := positional(args, 1)
	if err != nil {
		return err
	}
	creator, err := a.api.GetCreator(ctx, args[0])
	if err != nil {
		return err
	}
	return a.print(creator)
}

func (a *App) recipes(ctx context.Context, args []string) error {
	var query models.RecipeQuery
	fs := newFlagSet("recipes")
	fs.StringVar(&query.Name, "name", "", "name substring")
	fs.StringVar(&query.CreatorID, "creator", "", "creator id")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	recipes, err := a.api.GetRecipes(ctx, query)
	if err != nil {
		return err
	}
	return a.print(recipes)
}

func (a *App) recipe(ctx context.Context, args []string) error {
	args, err := positional(args, 1)
	if err != nil {
		return err
	}
	recipe, err := a.api.GetRecipe(ctx, args[0])
	if err != nil {
		return err
	}
	return a.print(recipe)
}

func (a *App) readRecipe(args []string) (models.Recipe, error) {
	var recipe models.Recipe
	args, err := positional(args, 1)
	if err != nil {
		return recipe, err
	}

	data, err := a.readFile(args[0])
	if err != nil {
		return recipe, err
	}
	if err = json.Unmarshal(data, &recipe); err != nil {
		return recipe, fmt.Errorf("%w: %s is not a recipe: %w", ErrUsage, args[0], err)
	}
	return recipe, nil
}

func (a *App) create(ctx context.Context, args []string) error {
	recipe, err := a.readRecipe(args)
	if err != nil {
		return err
	}
	created, err := a.api.CreateRecipe(ctx, recipe)
	if err != nil {
		return err
	}
	return a.print(created)
}

func (a *App) update(ctx context.Context, args []string) error {
	recipe, err := a.readRecipe(args)
	if err != nil {
		return err
	}
	if recipe.ID.IsZero() {
		return fmt.Errorf("%w: the recipe file has no id", ErrUsage)
	}
	updated, err := a.api.UpdateRecipe(ctx, recipe)
	if err != nil {
		return err
	}
	return a.print(updated)
}

func (a *App) delete(ctx context.Context, args []string) error {
	args, err := positional(args, 1)
	if err != nil {
		return err
	}
	if err = a.api.DeleteRecipe(ctx, args[0]); err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, "deleted")
	return err
}

func (a *App) filters(ctx context.Context, args []string) error {
	if len(args) == 1 {
		filters, err := a.api.GetRecipeFilters(ctx, args[0])
		if err != nil {
			return err
		}
		return a.print(filters)
	}
	if _, err := positional(args, 0); err != nil {
		return err
	}

	filters, err := a.api.GetCategorizedFilters(ctx)
	if err != nil {
		return err
	}
	return a.print(filters)
}

func (a *App) attach(ctx context.Context, args []string) error {
	args, err := positional(args, 2)
	if err != nil {
		return err
	}
	attached, err := a.api.AttachFilter(ctx, args[0], models.AttachFilterRequest{Value: args[1]})
	if err != nil {
		return err
	}
	return a.printChanged(attached, "attached", "not attached: the recipe already has a filter of that category")
}

func (a *App) detach(ctx context.Context, args []string) error {
	args, err := positional(args, 2)
	if err != nil {
		return err
	}
	detached, err := a.api.DetachFilterByValue(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	return a.printChanged(detached, "detached", "the recipe has no such filter")
}

func (a *App) favorites(ctx context.Context, args []string) error {
	fs := newFlagSet("favorites")
	name := fs.String("name", "", "recipe name substring")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	records, err := a.api.GetFavorites(ctx, *name)
	if err != nil {
		return err
	}
	return a.print(records)
}

func (a *App) favorite(ctx context.Context, args []string) error {
	args, err := positional(args, 1)
	if err != nil {
		return err
	}
	added, err := a.api.AddToFavorites(ctx, args[0])
	if err != nil {
		return err
	}
	return a.printChanged(added, "added to favorites", "already in favorites")
}

func (a *App) unfavorite(ctx context.Context, args []string) error {
	args, err := positional(args, 1)
	if err != nil {
		return err
	}
	removed, err := a.api.RemoveFromFavorites(ctx, args[0])
	if err != nil {
		return err
	}
	return a.printChanged(removed, "removed from favorites", "not in favorites")
}

func (a *App) follow(ctx context.Context, args []string) error {
	args, err := positional(args, 1)
	if err != nil {
		return err
	}
	followed, err := a.api.Follow(ctx, args[0])
	if err != nil {
		return err
	}
	return a.printChanged(followed, "following", "already following")
}

func (a *App) unfollow(ctx context.Context, args []string) error {
	args, err := positional(args, 1)
	if err != nil {
		return err
	}
	unfollowed, err := a.api.Unfollow(ctx, args[0])
	if err != nil {
		return err
	}
	return a.printChanged(unfollowed, "unfollowed", "not following")
}

func (a *App) upload(ctx context.Context, args []string) error {
	args, err := positional(args, 1)
	if err != nil {
		return err
	}
	data, err := a.readFile(args[0])
	if err != nil {
		return err
	}

	image, err := a.api.UploadImage(ctx, data)
	if err != nil {
		return err
	}
	a.logger.Debug().Str("key", image.Key).Str("file", strings.TrimSpace(args[0])).Msg("image uploaded")
	return a.print(image)
}
