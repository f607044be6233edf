package database

import (
	"fmt"
	"strings"

	"github.com/profolio/profolio/internal/domain"

	"gorm.io/gorm"
)

var defaultPositions = []domain.Position{
	{Name: "Backend Engineer"},
	{Name: "Frontend Engineer"},
	{Name: "Full-Stack Engineer"},
	{Name: "Mobile Engineer"},
	{Name: "DevOps Engineer"},
	{Name: "Data Engineer"},
	{Name: "Machine Learning Engineer"},
	{Name: "Security Engineer"},
	{Name: "Product Manager"},
	{Name: "Designer"},
}

var defaultTechnologies = []domain.Technology{
	{Name: "Go"},
	{Name: "Python"},
	{Name: "TypeScript"},
	{Name: "Java"},
	{Name: "Kotlin"},
	{Name: "Swift"},
	{Name: "Rust"},
	{Name: "PostgreSQL"},
	{Name: "Redis"},
	{Name: "Kafka"},
	{Name: "Kubernetes"},
	{Name: "AWS"},
	{Name: "React"},
	{Name: "Spring"},
	{Name: "Docker"},
}

// DefaultLookupNames lists the baseline rows seeding would ensure, for
// dry-run reporting.
func DefaultLookupNames() (positions, technologies []string) {
	for _, p := range defaultPositions {
		positions = append(positions, p.Name)
	}
	for _, t := range defaultTechnologies {
		technologies = append(technologies, t.Name)
	}
	return positions, technologies
}

type SeedReport struct {
	CreatedPositions    int  `json:"created_positions"`
	CreatedTechnologies int  `json:"created_technologies"`
	AdminPromoted       bool `json:"admin_promoted"`
	Noop                bool `json:"noop"`
}

func Seed(db *gorm.DB, bootstrapAdminEmail string) error {
	_, err := SeedSync(db, bootstrapAdminEmail)
	return err
}

// SeedSync makes the lookup tables and the bootstrap admin converge on the
// expected baseline. It is idempotent; rows already present are left alone.
func SeedSync(db *gorm.DB, bootstrapAdminEmail string) (*SeedReport, error) {
	report := &SeedReport{}

	for _, p := range defaultPositions {
		res := db.Where("name = ?", p.Name).FirstOrCreate(&p)
		if res.Error != nil {
			return nil, fmt.Errorf("seed position %q: %w", p.Name, res.Error)
		}
		if res.RowsAffected > 0 {
			report.CreatedPositions++
		}
	}

	for _, tech := range defaultTechnologies {
		res := db.Where("name = ?", tech.Name).FirstOrCreate(&tech)
		if res.Error != nil {
			return nil, fmt.Errorf("seed technology %q: %w", tech.Name, res.Error)
		}
		if res.RowsAffected > 0 {
			report.CreatedTechnologies++
		}
	}

	if email := strings.TrimSpace(strings.ToLower(bootstrapAdminEmail)); email != "" {
		res := db.Model(&domain.User{}).
			Where("email = ? AND is_admin = ?", email, false).
			Update("is_admin", true)
		if res.Error != nil {
			return nil, fmt.Errorf("promote bootstrap admin: %w", res.Error)
		}
		report.AdminPromoted = res.RowsAffected > 0
	}

	report.Noop = report.CreatedPositions == 0 && report.CreatedTechnologies == 0 && !report.AdminPromoted
	return report, nil
}
