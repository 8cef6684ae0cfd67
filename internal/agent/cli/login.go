package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-recipes/internal/agent/config"
)

// NewLoginCmd создаёт CLI-команду для входа пользователя в систему.
//
// Команда получает токен и сохраняет его в локальный конфигурационный файл.
// Токен бессрочный, повторный вход нужен только после logout.
//
// Пример использования:
//
//	recipes login --username shux --password 1234
func NewLoginCmd(app *App) *cobra.Command {
	var f credentialFlags

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Логин пользователя (получить токен)",
		Long: `Логин пользователя.

Пример:
  recipes login --username shux --password 1234
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := f.resolvePassword(cmd)
			if err != nil {
				return err
			}

			resp, err := app.Client().Login(f.username, password)
			if err != nil {
				return err
			}

			app.Creds = &config.Credentials{
				Token:    resp.Token,
				UserID:   resp.UserID,
				Username: f.username,
				Server:   app.ServerURL,
			}
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "login ok (token saved)")
			return nil
		},
	}

	f.bind(cmd)
	return cmd
}

// NewLogoutCmd удаляет сохранённый токен.
//
// Сервер о выходе не узнаёт: токен остаётся действительным,
// просто клиент его забывает.
func NewLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Удалить сохранённый токен",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Clear(app.CredsPath); err != nil {
				return err
			}
			app.Creds = &config.Credentials{}
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}
