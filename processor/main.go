package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"port-app/config"
	"port-app/controllers/idgen"
	"port-app/database"
	"port-app/repositories"
	"port-app/services/importer"

	"github.com/xuri/excelize/v2"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

// Standalone manifest watcher: sheets dropped into the import folder
// are reconciled into the container set of the vessel named in the
// filename (MANIFEST_<vesselID>_*.xlsx), then moved to processed/.
// The folder is swept on a fixed poll interval.

const pollInterval = 30 * time.Second

func main() {
	config.LoadConfig()

	db, err := database.Open()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	idgen.Init()

	fmt.Println("Manifest processor watching", config.ImportDropDir)

	sweep(db)
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for range ticker.C {
		sweep(db)
	}
}

func sweep(db *gorm.DB) {
	files, err := filepath.Glob(filepath.Join(config.ImportDropDir, "*.xlsx"))
	if err != nil {
		log.Printf("Failed to read import folder: %v", err)
		return
	}

	for _, file := range files {
		if err := processManifest(db, file); err != nil {
			log.Printf("Failed to process %s: %v", file, err)
		}
	}
}

func processManifest(db *gorm.DB, filename string) error {
	vesselID, err := vesselIDFromFilename(filename)
	if err != nil {
		return err
	}

	xl, err := excelize.OpenFile(filename)
	if err != nil {
		return fmt.Errorf("cannot read sheet: %w", err)
	}

	sheets := xl.GetSheetList()
	if len(sheets) == 0 {
		xl.Close()
		return fmt.Errorf("no sheets in %s", filename)
	}
	grid, err := xl.GetRows(sheets[0])
	xl.Close()
	if err != nil {
		return err
	}

	repo := repositories.NewContainerRepository(db)
	existing, err := repo.GetByVessel(vesselID)
	if err != nil {
		return err
	}

	result, err := importer.Reconcile(grid, existing, vesselID)
	if err != nil {
		return err
	}

	if err := repo.SaveImportBatch(vesselID, result.Containers, result.TotalPkgs, result.TotalWeight); err != nil {
		return err
	}

	fmt.Printf("Imported %s: %d inserted, %d updated\n", filepath.Base(filename), result.Inserted, result.Updated)

	if err := moveToProcessed(filename); err != nil {
		return err
	}

	sendImportNotification(filepath.Base(filename), result.Inserted, result.Updated)
	return nil
}

// vesselIDFromFilename parses MANIFEST_<vesselID>_anything.xlsx.
func vesselIDFromFilename(filename string) (int64, error) {
	base := filepath.Base(filename)
	parts := strings.Split(base, "_")
	if len(parts) < 2 || !strings.EqualFold(parts[0], "MANIFEST") {
		return 0, fmt.Errorf("unrecognized filename %s, expected MANIFEST_<vesselID>_*.xlsx", base)
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid vessel ID in filename %s", base)
	}
	return id, nil
}

func moveToProcessed(filename string) error {
	processedFolder := filepath.Join(config.ImportDropDir, "processed")
	if _, err := os.Stat(processedFolder); os.IsNotExist(err) {
		if err := os.MkdirAll(processedFolder, os.ModePerm); err != nil {
			return err
		}
	}

	dst := filepath.Join(processedFolder, filepath.Base(filename))
	if err := os.Rename(filename, dst); err != nil {
		return copyAndDeleteFile(filename, dst)
	}
	return nil
}

func copyAndDeleteFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destinationFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destinationFile.Close()

	if _, err := io.Copy(destinationFile, sourceFile); err != nil {
		return err
	}

	return os.Remove(src)
}

func sendImportNotification(filename string, inserted, updated int) {
	if config.SMTPHost == "" || len(config.AlertEmails) == 0 {
		return
	}

	body := fmt.Sprintf(`
		<html>
			<body>
				<h3>Manifest import completed</h3>
				<p>File: <strong>%s</strong></p>
				<p>Inserted: %d, Updated: %d</p>
				<p>This is an auto-generated email. Please do not reply.</p>
			</body>
		</html>
	`, filename, inserted, updated)

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPSender)
	msg.SetHeader("To", config.AlertEmails...)
	msg.SetHeader("Subject", "Manifest import "+filename)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPSender, config.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		log.Printf("Failed to send import notification: %v", err)
	}
}
