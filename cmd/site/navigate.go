package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alquimiadental/site/core/locale"
	"github.com/alquimiadental/site/core/localestate"
	"github.com/alquimiadental/site/core/logger"
	"github.com/alquimiadental/site/core/navigation"
	"github.com/alquimiadental/site/core/preference"
	"github.com/alquimiadental/site/integration/database/redis"
)

const connectTimeout = 5 * time.Second

var (
	navHint     string
	navStored   string
	navRedisURL string
	navClientID string
	switchFrom  string
)

var navigateCmd = &cobra.Command{
	Use:   "navigate <url>...",
	Short: "Run client-side navigations through the locale guards",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nav, closeStore, err := newNavigator(cmd)
		if err != nil {
			return err
		}
		defer closeStore()
		for _, raw := range args {
			res, err := nav.Navigate(cmd.Context(), raw)
			if err != nil {
				return fmt.Errorf("navigate %s: %w", raw, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (locale %s, hops %d)\n", raw, res.URL, res.Locale, res.Hops)
		}
		return nil
	},
}

var switchCmd = &cobra.Command{
	Use:   "switch <locale>",
	Short: "Switch the language of the page given by --from",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nav, closeStore, err := newNavigator(cmd)
		if err != nil {
			return err
		}
		defer closeStore()
		if _, err := nav.Navigate(cmd.Context(), switchFrom); err != nil {
			return fmt.Errorf("navigate %s: %w", switchFrom, err)
		}

		res, switched, err := nav.SwitchTo(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if !switched {
			fmt.Fprintf(cmd.OutOrStdout(), "unchanged: %s (locale %s)\n", nav.History().Current(), nav.State().Current())
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (locale %s)\n", res.URL, res.Locale)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{navigateCmd, switchCmd} {
		c.Flags().StringVar(&navHint, "hint", "", "browser language hint, e.g. en-US")
		c.Flags().StringVar(&navStored, "stored", "", "initial stored preference (in-memory store only)")
		c.Flags().StringVar(&navRedisURL, "redis", "", "Redis URL holding stored preferences")
		c.Flags().StringVar(&navClientID, "client-id", "cli", "client identifier for the Redis preference key")
	}
	switchCmd.Flags().StringVar(&switchFrom, "from", "/", "URL displayed before switching")
}

func newNavigator(cmd *cobra.Command) (*navigation.Navigator, func(), error) {
	resolver, err := newResolver()
	if err != nil {
		return nil, nil, err
	}

	store, closeStore, err := newStore(cmd.Context())
	if err != nil {
		return nil, nil, err
	}

	state := localestate.New(resolver.Catalog().Default())
	state.OnChange(func(code locale.Code) {
		log.Debug("locale changed", logger.Component("cli"), logger.Locale(string(code)))
	})

	return navigation.New(resolver,
		navigation.WithStore(store),
		navigation.WithHint(navigation.StaticHint(navHint)),
		navigation.WithPublisher(state),
		navigation.WithLogger(log),
	), closeStore, nil
}

// newStore returns the preference store selected by the flags and a function
// that releases its connection.
func newStore(ctx context.Context) (preference.Store, func(), error) {
	if navRedisURL == "" {
		return preference.NewMemory(navStored), func() {}, nil
	}

	client, err := redis.Connect(ctx, redis.Config{
		ConnectionURL:  navRedisURL,
		RetryAttempts:  1,
		ConnectTimeout: connectTimeout,
	})
	if err != nil {
		return nil, nil, err
	}
	closeClient := func() {
		if err := client.Close(); err != nil {
			log.Warn("failed to close redis client", logger.Component("cli"), logger.Error(err))
		}
	}

	store, err := preference.NewRedis(client, navClientID)
	if err != nil {
		closeClient()
		return nil, nil, err
	}
	if navStored != "" {
		if err := store.Save(ctx, navStored); err != nil {
			closeClient()
			return nil, nil, err
		}
	}
	return store, closeClient, nil
}
