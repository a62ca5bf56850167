package categories

import (
	"encoding/json"
	"log"
	"os"

	"ewm_backend/internals/features/categories/model"

	"gorm.io/gorm"
)

type CategorySeed struct {
	Name string `json:"name"`
}

func SeedCategoriesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file category:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []CategorySeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.CategoryModel
		if err := db.Where("category_name = ?", data.Name).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Category '%s' sudah ada, dilewati.", data.Name)
			continue
		}

		category := model.CategoryModel{CategoryName: data.Name}
		if err := db.Create(&category).Error; err != nil {
			log.Printf("❌ Gagal menyimpan category '%s': %v", data.Name, err)
			continue
		}
		log.Printf("✅ Category '%s' dibuat.", data.Name)
	}
}
