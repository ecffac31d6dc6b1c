package cli

import (
	"fmt"

	"github.com/redleaf-cms/redleaf/internal/core/repository"
	"github.com/redleaf-cms/redleaf/internal/core/service"
	"github.com/redleaf-cms/redleaf/internal/infrastructure/sqlite"
	"github.com/redleaf-cms/redleaf/pkg/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "redleaf",
	Short: "RedLeaf CMS - a lightweight content management backend",
	Long: `RedLeaf CMS is a minimal content management backend.

It provides:
- Public post listing and detail pages with markdown rendering
- An admin dashboard shell and JSON API for post management
- User accounts with argon2id password hashing
- A single-file sqlite database, created on first start`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./redleaf.yml)")
}

// initServices initializes the database and services
func initServices() (*Services, error) {
	db, err := sqlite.New(cfg.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	postRepo := sqlite.NewPostRepository(db)
	userRepo := sqlite.NewUserRepository(db)

	return &Services{
		DB:          db,
		PostRepo:    postRepo,
		UserRepo:    userRepo,
		PostService: service.NewPostService(postRepo),
		UserService: service.NewUserService(userRepo),
	}, nil
}

// Services holds all initialized services
type Services struct {
	DB          *sqlite.DB
	PostRepo    repository.PostRepository
	UserRepo    repository.UserRepository
	PostService *service.PostService
	UserService *service.UserService
}

// Close closes all resources
func (s *Services) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
}
