package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-recipes/internal/shared/models"
	"github.com/IvanChernomyrdin/go-recipes/internal/shared/utils"
)

// NewRecipesCmd создаёт группу команд для работы с рецептами.
//
// list и get публичные, create/update/delete требуют login.
func NewRecipesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "Просмотр и управление рецептами",
	}

	cmd.AddCommand(newRecipesListCmd(app))
	cmd.AddCommand(newRecipesGetCmd(app))
	cmd.AddCommand(newRecipesCreateCmd(app))
	cmd.AddCommand(newRecipesUpdateCmd(app))
	cmd.AddCommand(newRecipesDeleteCmd(app))
	return cmd
}

func newRecipesListCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Список всех рецептов",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Client().ListRecipes()
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), list)
			}

			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no recipes yet")
				return nil
			}
			for _, r := range list {
				mine := ""
				if app.Creds.LoggedIn() && r.UserOwner == app.Creds.UserID {
					mine = "\t(mine)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%g min%s\n", r.ID, r.Name, r.CookingTime, mine)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func newRecipesGetCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Показать рецепт по ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := app.Client().GetRecipe(args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), r)
			}
			printRecipe(cmd.OutOrStdout(), r)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

// recipeFlags — поля рецепта, задаваемые флагами create/update.
type recipeFlags struct {
	name         string
	ingredients  []string
	instructions string
	imageURL     string
	cookingTime  float64
}

func (f *recipeFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "recipe name")
	cmd.Flags().StringSliceVar(&f.ingredients, "ingredient", nil, "ingredient (repeatable or comma-separated)")
	cmd.Flags().StringVar(&f.instructions, "instructions", "", "cooking instructions")
	cmd.Flags().StringVar(&f.imageURL, "image-url", "", "image URL")
	cmd.Flags().Float64Var(&f.cookingTime, "cooking-time", 0, "cooking time in minutes (fractions allowed)")
}

func newRecipesCreateCmd(app *App) *cobra.Command {
	var f recipeFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Создать рецепт",
		Long: `Создать рецепт от имени текущего пользователя.

Пример:
  recipes recipes create --name Borsch --ingredient beet --ingredient cabbage --cooking-time 90
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.Token()
			if err != nil {
				return err
			}

			ingredients := f.ingredients
			if ingredients == nil {
				ingredients = []string{}
			}

			r, err := app.Client().CreateRecipe(token, models.CreateRecipeRequest{
				Name:         f.name,
				Ingredients:  ingredients,
				Instructions: f.instructions,
				ImageURL:     f.imageURL,
				CookingTime:  f.cookingTime,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", r.ID)
			return nil
		},
	}

	f.bind(cmd)
	cmd.MarkFlagRequired("name")
	return cmd
}

func newRecipesUpdateCmd(app *App) *cobra.Command {
	var f recipeFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Изменить рецепт (только переданные поля)",
		Long: `Изменить свой рецепт. Отправляются только переданные флаги.

Пример:
  recipes recipes update <id> --cooking-time 60
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.Token()
			if err != nil {
				return err
			}

			var req models.UpdateRecipeRequest
			changed := cmd.Flags().Changed
			if changed("name") {
				req.Name = utils.StrPtr(f.name)
			}
			if changed("ingredient") {
				req.Ingredients = utils.Ptr(f.ingredients)
			}
			if changed("instructions") {
				req.Instructions = utils.StrPtr(f.instructions)
			}
			if changed("image-url") {
				req.ImageURL = utils.StrPtr(f.imageURL)
			}
			if changed("cooking-time") {
				req.CookingTime = utils.Ptr(f.cookingTime)
			}
			if req == (models.UpdateRecipeRequest{}) {
				return fmt.Errorf("nothing to update: pass at least one of --name, --ingredient, --instructions, --image-url, --cooking-time")
			}

			r, err := app.Client().UpdateRecipe(token, args[0], req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", r.ID)
			return nil
		},
	}

	f.bind(cmd)
	return cmd
}

func newRecipesDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Удалить рецепт",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.Token()
			if err != nil {
				return err
			}
			if err := app.Client().DeleteRecipe(token, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}

func printRecipe(w io.Writer, r models.Recipe) {
	fmt.Fprintf(w, "id:           %s\n", r.ID)
	fmt.Fprintf(w, "name:         %s\n", r.Name)
	fmt.Fprintf(w, "cooking time: %g min\n", r.CookingTime)
	fmt.Fprintf(w, "owner:        %s\n", r.UserOwner)
	if r.ImageURL != "" {
		fmt.Fprintf(w, "image:        %s\n", r.ImageURL)
	}
	if len(r.Ingredients) > 0 {
		fmt.Fprintf(w, "ingredients:  %s\n", strings.Join(r.Ingredients, ", "))
	}
	if r.Instructions != "" {
		fmt.Fprintf(w, "instructions:\n%s\n", r.Instructions)
	}
}

// printJSON печатает значение как JSON с отступами.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
