// Package cli реализует командный интерфейс (CLI) клиента сервера рецептов.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - разбор аргументов и флагов командной строки;
//   - загрузку локальных учётных данных (токен) из конфигурационного файла;
//   - выполнение команд и вывод результата пользователю.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-recipes/internal/agent/api"
	"github.com/IvanChernomyrdin/go-recipes/internal/agent/config"
)

// DefaultServerURL — адрес сервера по умолчанию (порт из configs/server.yaml).
const DefaultServerURL = "http://127.0.0.1:3002"

// ErrNotLoggedIn возвращается командами, которым нужен токен.
var ErrNotLoggedIn = errors.New("not logged in (run: recipes login)")

// App содержит состояние CLI-приложения, разделяемое между командами.
type App struct {
	// ServerURL — базовый URL сервера (например, "http://127.0.0.1:3002").
	ServerURL string
	// AuthHeader — заголовок, в который кладётся токен.
	AuthHeader string

	// CredsPath — путь к файлу с сохранённым токеном.
	CredsPath string
	// Creds — загруженные учётные данные из файла конфигурации.
	Creds *config.Credentials
}

// Client создаёт API-клиент с настройками приложения.
func (a *App) Client() *api.Client {
	return NewAPIClient(a.ServerURL).WithAuthHeader(a.AuthHeader)
}

// Token возвращает сохранённый токен или ErrNotLoggedIn.
func (a *App) Token() (string, error) {
	if !a.Creds.LoggedIn() {
		return "", ErrNotLoggedIn
	}
	return a.Creds.Token, nil
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются для вывода информации о сборке (команда version).
// В PersistentPreRunE определяется путь к файлу учётных данных и загружается токен.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "Recipes CLI — клиент сервера рецептов",
		Long: `Recipes CLI.

Команды:
  register  Регистрация нового пользователя
  login     Вход (сохраняет токен локально)
  logout    Удалить сохранённый токен
  recipes   Просмотр и управление рецептами
  version   Версия и дата сборки

Примеры:

Регистрация:
  recipes register --username shux
  (пароль будет запрошен со скрытым вводом)

Логин:
  recipes login --username shux --password 1234

Рецепты:
  recipes recipes list
  recipes recipes create --name Borsch --ingredient beet --ingredient cabbage --cooking-time 90
  recipes recipes update <id> --cooking-time 60
  recipes recipes delete <id>
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.CredsPath == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				app.CredsPath = p
			}

			creds, err := config.Load(app.CredsPath)
			if err != nil {
				return fmt.Errorf("load credentials %s: %w", app.CredsPath, err)
			}
			app.Creds = creds
			return nil
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", DefaultServerURL, "server base URL")
	cmd.PersistentFlags().StringVar(&app.AuthHeader, "auth-header", api.DefaultAuthHeader, "header carrying the token")
	cmd.PersistentFlags().StringVar(&app.CredsPath, "creds", "", "credentials file (default ~/.recipes/credentials.json)")

	cmd.AddCommand(NewRegisterCmd(app))
	cmd.AddCommand(NewLoginCmd(app))
	cmd.AddCommand(NewLogoutCmd(app))
	cmd.AddCommand(NewRecipesCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке выполнения команды сообщение выводится в stderr, после чего процесс
// завершается с кодом 1 (os.Exit(1)).
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
