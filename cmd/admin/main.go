// Command admin boots the front-end core: configuration, session
// restoration, theme application, and a status summary for the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/crimsonknight90/inventario-admin/app"
	"github.com/crimsonknight90/inventario-admin/auth"
	"github.com/crimsonknight90/inventario-admin/guard"
	"github.com/crimsonknight90/inventario-admin/httpapi"
	"github.com/crimsonknight90/inventario-admin/internal/config"
	"github.com/crimsonknight90/inventario-admin/internal/logging"
	"github.com/crimsonknight90/inventario-admin/notify"
	"github.com/crimsonknight90/inventario-admin/session"
	"github.com/crimsonknight90/inventario-admin/theme"
	"github.com/crimsonknight90/inventario-admin/theme/cssvars"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("error running admin")
	}
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	apiBase := pflag.String("api-base", "", "backend base URL (overrides API_BASE_URL)")
	stateDir := pflag.String("state-dir", "", "snapshot directory (overrides STATE_DIR)")
	resetTheme := pflag.Bool("reset-theme", false, "restore the default theme and exit")
	pflag.Parse()

	c := config.New()
	logging.Setup(c.GetEnv(), c.GetLogLevel())
	displayAppname(c.GetAppName())

	baseURL := c.GetAPIBaseURL()
	if *apiBase != "" {
		baseURL = *apiBase
	}
	dir := c.GetStateDir()
	if *stateDir != "" {
		dir = *stateDir
	}

	transport := auth.NewService(baseURL,
		auth.WithTimeout(time.Duration(c.GetHTTPTimeoutSeconds())*time.Second))

	var sessionRepo session.Repo = session.NewFileRepo(dir)
	if c.GetSessionScope() == config.ScopeEphemeral {
		sessionRepo = session.NewInMemoryRepo()
	}
	sessions, err := session.NewStore(transport, sessionRepo)
	if err != nil {
		return err
	}
	sessions.RestoreFromStorage()

	root := cssvars.NewRoot()
	themes, err := theme.NewStore(theme.NewFileRepo(dir), cssvars.NewApplier(root))
	if err != nil {
		return err
	}
	themes.Initialize()
	if *resetTheme {
		themes.ResetTheme()
		log.Info().Msg("theme reset to defaults")
	}

	application := &app.App{
		Sessions: sessions,
		Theme:    themes,
		Notifier: notify.NewNotifier(),
		API:      httpapi.NewClient(baseURL, sessions),
	}
	if err := application.Validate(); err != nil {
		return err
	}
	ctx := app.WithApp(context.Background(), application)

	printStatus(ctx)
	return nil
}

func printStatus(ctx context.Context) {
	application, err := app.FromContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}

	if user := application.Sessions.User(); user != nil {
		fmt.Printf("signed in as %s\n", user.Email)
	} else {
		fmt.Println("signed out")
	}

	decision := guard.CanEnter(application.Sessions, []string{"admin"}, "/dashboard")
	if decision.Allowed {
		fmt.Println("admin routes: available")
	} else {
		fmt.Printf("admin routes: redirect to %s\n", decision.RedirectTo)
	}

	fmt.Println()
	fmt.Print(theme.Preview(application.Theme.Current()))
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
