package seed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/profolio/profolio/internal/config"
	"github.com/profolio/profolio/internal/database"
	"github.com/profolio/profolio/internal/domain"
	"github.com/profolio/profolio/internal/repository"
	"github.com/profolio/profolio/internal/security"
	"github.com/profolio/profolio/internal/tools/common"
	"github.com/profolio/profolio/internal/tools/ui"
)

type options struct {
	envFile             string
	bootstrapAdminEmail string
	ci                  bool
}

func NewRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{Use: "seed", Short: "Database seed tooling"}
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "path to env file")
	cmd.PersistentFlags().StringVar(&opts.bootstrapAdminEmail, "bootstrap-admin-email", "", "override bootstrap admin email")
	cmd.PersistentFlags().BoolVar(&opts.ci, "ci", false, "non-interactive machine-readable output")
	cmd.AddCommand(newApplyCommand(opts), newDryRunCommand(opts), newImportIdentitiesCommand(opts))
	return cmd
}

func newApplyCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Apply baseline lookup rows and the bootstrap admin",
		RunE: func(cmd *cobra.Command, args []string) error {
			details, err := run(opts, "seed apply", func(ctx context.Context) ([]string, error) {
				cfg, db, err := loadConfigDB(opts.envFile)
				if err != nil {
					return nil, err
				}
				email := cfg.BootstrapAdminEmail
				if opts.bootstrapAdminEmail != "" {
					email = strings.ToLower(strings.TrimSpace(opts.bootstrapAdminEmail))
				}
				report, err := database.SeedSync(db, email)
				if err != nil {
					return nil, err
				}
				details := []string{
					fmt.Sprintf("created_positions=%d", report.CreatedPositions),
					fmt.Sprintf("created_technologies=%d", report.CreatedTechnologies),
				}
				if email != "" {
					details = append(details, fmt.Sprintf("admin_promoted=%t email=%s", report.AdminPromoted, email))
				}
				if report.Noop {
					details = append(details, "baseline already in place")
				}
				return details, nil
			})
			if opts.ci {
				common.PrintCIResult(err == nil, "seed apply", details, err)
			}
			if err != nil {
				os.Exit(3)
			}
			return nil
		},
	}
}

func newDryRunCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dry-run",
		Short: "Show what seeding would ensure",
		RunE: func(cmd *cobra.Command, args []string) error {
			details, err := run(opts, "seed dry-run", func(ctx context.Context) ([]string, error) {
				cfg, _, err := loadConfigDB(opts.envFile)
				if err != nil {
					return nil, err
				}
				email := cfg.BootstrapAdminEmail
				if opts.bootstrapAdminEmail != "" {
					email = strings.ToLower(strings.TrimSpace(opts.bootstrapAdminEmail))
				}
				positions, technologies := database.DefaultLookupNames()
				details := []string{
					"would ensure positions: " + strings.Join(positions, ", "),
					"would ensure technologies: " + strings.Join(technologies, ", "),
				}
				if email != "" {
					details = append(details, "would promote bootstrap admin if present: "+email)
				}
				return details, nil
			})
			if opts.ci {
				common.PrintCIResult(err == nil, "seed dry-run", details, err)
			}
			if err != nil {
				os.Exit(3)
			}
			return nil
		},
	}
}

// newImportIdentitiesCommand loads member-registry rows from a CSV with
// member_id,legal_name,birth_date columns. Rows already present are skipped.
func newImportIdentitiesCommand(opts *options) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "import-identities",
		Short: "Import member registry rows from CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			details, err := run(opts, "seed import-identities", func(ctx context.Context) ([]string, error) {
				if strings.TrimSpace(file) == "" {
					return nil, fmt.Errorf("--file is required")
				}
				_, db, err := loadConfigDB(opts.envFile)
				if err != nil {
					return nil, err
				}
				imported, skipped, err := importIdentities(db, file)
				if err != nil {
					return nil, err
				}
				return []string{
					fmt.Sprintf("imported=%d", imported),
					fmt.Sprintf("skipped=%d", skipped),
				}, nil
			})
			if opts.ci {
				common.PrintCIResult(err == nil, "seed import-identities", details, err)
			}
			if err != nil {
				os.Exit(3)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "path to CSV registry export")
	return cmd
}

func importIdentities(db *gorm.DB, path string) (imported, skipped int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("open registry file: %w", err)
	}
	defer f.Close()

	identities := repository.NewExternalIdentityRepository(db)
	r := csv.NewReader(f)
	line := 0
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, skipped, fmt.Errorf("read registry row: %w", err)
		}
		line++
		if len(record) != 3 {
			return imported, skipped, fmt.Errorf("row %d: expected member_id,legal_name,birth_date", line)
		}
		memberID := strings.TrimSpace(record[0])
		legalName := strings.TrimSpace(record[1])
		birthDate := strings.TrimSpace(record[2])
		if line == 1 && strings.EqualFold(memberID, "member_id") {
			continue
		}
		if memberID == "" || legalName == "" {
			return imported, skipped, fmt.Errorf("row %d: member_id and legal_name are required", line)
		}
		if !security.ValidBirthDate(birthDate) {
			return imported, skipped, fmt.Errorf("row %d: invalid birth date %q", line, birthDate)
		}
		createErr := identities.Create(&domain.ExternalIdentity{
			MemberID:  memberID,
			Name:      legalName,
			BirthDate: birthDate,
		})
		if createErr != nil {
			if errors.Is(createErr, repository.ErrDuplicate) {
				skipped++
				continue
			}
			return imported, skipped, fmt.Errorf("row %d: %w", line, createErr)
		}
		imported++
	}
	return imported, skipped, nil
}

func run(opts *options, title string, fn func(context.Context) ([]string, error)) ([]string, error) {
	if opts.ci {
		return fn(context.Background())
	}
	return ui.Run(title, fn)
}

func loadConfigDB(envFile string) (*config.Config, *gorm.DB, error) {
	if err := common.LoadEnvFile(envFile); err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	db, err := database.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}
