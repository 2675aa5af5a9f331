package main

import (
	"encoding/csv"
	"log"
	"os"
	"strconv"
	"time"

	"scholarhub/config"
	"scholarhub/database"
	"scholarhub/models"
)

// Imports scholarships from Scholarships.csv into the database. Expected
// columns: scholarshipName, universityName, universityCity,
// universityCountry, subjectCategory, scholarshipCategory, degree,
// tuitionFees, applicationFee, serviceCharge, postDate, deadline,
// description. Dates are YYYY-MM-DD.
func main() {
	cfg := config.LoadConfig()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	file, err := os.Open("Scholarships.csv")
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	imported := 0
	for i, record := range records[1:] {
		if len(record) < 13 {
			log.Printf("Skipping row %d: expected 13 columns, got %d", i+2, len(record))
			continue
		}

		tuitionFees := parseFloat(record[7])
		applicationFee := parseFloat(record[8])
		serviceCharge := parseFloat(record[9])

		postDate, err := time.Parse("2006-01-02", record[10])
		if err != nil {
			log.Printf("Skipping row %d: bad postDate %q", i+2, record[10])
			continue
		}
		deadline, err := time.Parse("2006-01-02", record[11])
		if err != nil {
			log.Printf("Skipping row %d: bad deadline %q", i+2, record[11])
			continue
		}

		scholarship := models.Scholarship{
			ScholarshipName:     record[0],
			UniversityName:      record[1],
			UniversityCity:      record[2],
			UniversityCountry:   record[3],
			SubjectCategory:     record[4],
			ScholarshipCategory: record[5],
			Degree:              record[6],
			TuitionFees:         tuitionFees,
			ApplicationFee:      applicationFee,
			ServiceCharge:       serviceCharge,
			PostDate:            postDate,
			Deadline:            deadline,
			Description:         record[12],
		}

		if err := db.Db.Create(&scholarship).Error; err != nil {
			log.Printf("Failed to insert row %d: %v", i+2, err)
			continue
		}
		imported++
	}

	log.Printf("Imported %d scholarships.", imported)
}

func parseFloat(value string) float64 {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return parsed
}
