package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRegisterCmd создаёт CLI-команду для регистрации нового пользователя.
//
// Пример использования:
//
//	recipes register --username shux --password 1234
//
// Без --password пароль запрашивается со скрытым вводом.
func NewRegisterCmd(app *App) *cobra.Command {
	var f credentialFlags

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Регистрация нового пользователя",
		Long: `Регистрация нового пользователя на сервере.

Пример:
  recipes register --username shux --password 1234
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := f.resolvePassword(cmd)
			if err != nil {
				return err
			}

			resp, err := app.Client().Register(f.username, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "registration successful (user id: %s)\n", resp.UserID)
			return nil
		},
	}

	f.bind(cmd)
	return cmd
}
