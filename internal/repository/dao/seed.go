package dao

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func amount(v float64) *float64 {
	return &v
}

// Seed loads the Kermisfuif demo fixture: 6 users, 5 sponsors, 4 bundles
// and 4 assignments. It is a no-op when users already exist, so tests and
// restarts can call it unconditionally.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	users := []struct {
		id, username, displayName, password, role string
	}{
		{"1", "admin", "Admin", "admin", "admin"},
		{"2", "jan", "Jan Jansen", "test", "member"},
		{"3", "marie", "Marie Pietersen", "test", "member"},
		{"4", "tom", "Tom van Bergen", "test", "member"},
		{"5", "lisa", "Lisa de Vries", "test", "member"},
		{"6", "piet", "Piet Bakker", "test", "member"},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, u := range users {
			hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
			}

			user := User{
				ID:          u.id,
				Username:    u.username,
				DisplayName: u.displayName,
				Password:    string(hash),
				Role:        u.role,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		}

		sponsors := []Sponsor{
			{
				ID:            "1",
				Name:          "Bakkerij Jansen",
				ContactPerson: "Henk Jansen",
				Email:         "henk@bakkerijjansen.nl",
				Phone:         "06-12345678",
				Address:       "Hoofdstraat 123, Amsterdam",
				Description:   "Lokale bakkerij die graag lokale initiatieven steunt",
				TargetAmount:  500,
				CreatedAt:     date(2024, time.January, 15),
			},
			{
				ID:            "2",
				Name:          "Supermarkt De Vriendelijke Buurt",
				ContactPerson: "Sandra de Wit",
				Email:         "sandra@vriendelijkebuurt.nl",
				Phone:         "06-87654321",
				Address:       "Winkelstraat 45, Utrecht",
				Description:   "Supermarkt die actief betrokken is bij de lokale gemeenschap",
				TargetAmount:  1000,
				CreatedAt:     date(2024, time.January, 20),
			},
			{
				ID:            "3",
				Name:          "Garage Van der Berg",
				ContactPerson: "Kees van der Berg",
				Email:         "kees@garagevdberg.nl",
				Phone:         "06-11223344",
				Address:       "Industrieweg 78, Rotterdam",
				Description:   "Familiebedrijf dat graag de jeugd ondersteunt",
				TargetAmount:  750,
				CreatedAt:     date(2024, time.January, 25),
			},
			{
				ID:            "4",
				Name:          "Restaurant De Gouden Lepel",
				ContactPerson: "Anna Smit",
				Email:         "anna@goudenelepel.nl",
				Phone:         "06-55667788",
				Address:       "Marktplein 12, Den Haag",
				Description:   "Restaurant dat lokale verenigingen graag steunt",
				TargetAmount:  300,
				CreatedAt:     date(2024, time.February, 1),
			},
			{
				ID:            "5",
				Name:          "Bouwbedrijf Hendriks",
				ContactPerson: "Rob Hendriks",
				Email:         "rob@bouwbedrijfhendriks.nl",
				Phone:         "06-99887766",
				Address:       "Bouwstraat 56, Eindhoven",
				Description:   "Bouwbedrijf met hart voor de gemeenschap",
				TargetAmount:  1200,
				CreatedAt:     date(2024, time.February, 5),
			},
		}
		if err := tx.Create(&sponsors).Error; err != nil {
			return err
		}

		bundles := []Bundle{
			{ID: "1", Name: "Brons", Description: "Basis sponsorpakket", Price: 250, CreatedAt: date(2024, time.January, 1)},
			{ID: "2", Name: "Zilver", Description: "Standaard sponsorpakket", Price: 500, CreatedAt: date(2024, time.January, 1)},
			{ID: "3", Name: "Goud", Description: "Premium sponsorpakket", Price: 1000, CreatedAt: date(2024, time.January, 1)},
			{ID: "4", Name: "Platina", Description: "Exclusief sponsorpakket", Price: 2000, CreatedAt: date(2024, time.January, 1)},
		}
		if err := tx.Create(&bundles).Error; err != nil {
			return err
		}

		assignments := []Assignment{
			{
				ID:            "1",
				SponsorID:     "1",
				UserID:        "2",
				Status:        "completed",
				AssignedAt:    date(2024, time.January, 25),
				AmountPledged: 500,
				AmountActual:  amount(500),
				LogoReady:     true,
				CashReady:     true,
				TicketsReady:  false,
				Notes:         "Zeer tevreden met de samenwerking",
			},
			{
				ID:            "2",
				SponsorID:     "2",
				UserID:        "3",
				Status:        "in_progress",
				AssignedAt:    date(2024, time.February, 1),
				AmountPledged: 0,
			},
			{
				ID:            "3",
				SponsorID:     "3",
				UserID:        "4",
				Status:        "completed",
				AssignedAt:    date(2024, time.February, 3),
				AmountPledged: 750,
				AmountActual:  amount(750),
				LogoReady:     true,
				Notes:         "Goede samenwerking, willen volgend jaar weer meedoen",
			},
			{
				ID:            "4",
				SponsorID:     "4",
				UserID:        "5",
				Status:        "assigned",
				AssignedAt:    date(2024, time.February, 5),
				AmountPledged: 0,
			},
		}

		return tx.Create(&assignments).Error
	})
}
