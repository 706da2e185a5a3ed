package main

import (
	"context"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/logger"

	"github.com/joho/godotenv"
)

func i64(v int64) *int64 { return &v }
func str(v string) *string { return &v }

// 初期カタログ。価格はセント。
var products = []model.Product{
	{
		Name:          "Artisan Leather Tote",
		Description:   "Handcrafted Italian leather tote with brass hardware and suede lining.",
		Price:         48500,
		OriginalPrice: i64(58000),
		Image:         "https://images.unsplash.com/photo-1548036328-c9fa89d128fa?w=600&q=80",
		Category:      "Bags",
		Badge:         str("Sale"),
		Rating:        4.9,
		Reviews:       127,
		Stock:         24,
	},
	{
		Name:        "Midnight Chronograph",
		Description: "Swiss-made automatic movement with sapphire crystal and leather strap.",
		Price:       129500,
		Image:       "https://images.unsplash.com/photo-1523170335258-f5ed11844a49?w=600&q=80",
		Category:    "Watches",
		Badge:       str("New"),
		Rating:      4.8,
		Reviews:     89,
		Stock:       12,
	},
	{
		Name:        "Cashmere Wrap Coat",
		Description: "Pure Mongolian cashmere in a timeless silhouette with horn buttons.",
		Price:       89000,
		Image:       "https://images.unsplash.com/photo-1539533018447-63fcce2678e3?w=600&q=80",
		Category:    "Clothing",
		Rating:      4.7,
		Reviews:     64,
		Stock:       18,
	},
	{
		Name:          "Gold Vermeil Earrings",
		Description:   "18k gold vermeil hoops, hypoallergenic and handmade in small batches.",
		Price:         14500,
		OriginalPrice: i64(18000),
		Image:         "https://images.unsplash.com/photo-1635767798638-3e25273a8236?w=600&q=80",
		Category:      "Jewelry",
		Badge:         str("Sale"),
		Rating:        4.9,
		Reviews:       203,
		Stock:         45,
	},
	{
		Name:        "Silk Twill Scarf",
		Description: "Hand-rolled edges, archival print on 100% mulberry silk twill.",
		Price:       19500,
		Image:       "https://images.unsplash.com/photo-1584030373081-f37b7bb4fa8e?w=600&q=80",
		Category:    "Accessories",
		Rating:      4.6,
		Reviews:     52,
		Stock:       30,
	},
	{
		Name:        "Heritage Weekender",
		Description: "Waxed canvas and bridle leather, built for a lifetime of travel.",
		Price:       62500,
		Image:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=600&q=80",
		Category:    "Bags",
		Badge:       str("Bestseller"),
		Rating:      4.8,
		Reviews:     156,
		Stock:       9,
	},
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.GoEnv)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal("db connect failed", "error", err)
	}

	if err := gormDB.AutoMigrate(&model.Product{}); err != nil {
		log.Fatal("migration failed", "error", err)
	}

	repo := infraRepo.NewProductGormRepository(gormDB)
	ctx := context.Background()

	//既にカタログがあれば何もしない
	existing, err := repo.List(ctx, "")
	if err != nil {
		log.Fatal("list failed", "error", err)
	}
	if len(existing) > 0 {
		log.Info("catalog already seeded", "count", len(existing))
		return
	}

	for _, p := range products {
		created, err := repo.Create(ctx, p)
		if err != nil {
			log.Fatal("seed failed", "product", p.Name, "error", err)
		}
		log.Info("seeded", "id", created.ID, "name", created.Name)
	}

	log.Info("seed complete", "count", len(products))
}
