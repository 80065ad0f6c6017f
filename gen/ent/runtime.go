// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/scanfolio/cv-scanner/db/ent/schema"
	"github.com/scanfolio/cv-scanner/gen/ent/cv"
	"github.com/scanfolio/cv-scanner/gen/ent/extractjob"
	"github.com/scanfolio/cv-scanner/gen/ent/profile"
	"github.com/scanfolio/cv-scanner/gen/ent/scanfile"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	cvFields := schema.CV{}.Fields()
	_ = cvFields
	// cvDescCreatedAt is the schema descriptor for created_at field.
	cvDescCreatedAt := cvFields[12].Descriptor()
	// cv.DefaultCreatedAt holds the default value on creation for the created_at field.
	cv.DefaultCreatedAt = cvDescCreatedAt.Default.(func() time.Time)
	// cvDescUpdatedAt is the schema descriptor for updated_at field.
	cvDescUpdatedAt := cvFields[13].Descriptor()
	// cv.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	cv.DefaultUpdatedAt = cvDescUpdatedAt.Default.(func() time.Time)
	// cv.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	cv.UpdateDefaultUpdatedAt = cvDescUpdatedAt.UpdateDefault.(func() time.Time)
	// cvDescID is the schema descriptor for id field.
	cvDescID := cvFields[0].Descriptor()
	// cv.DefaultID holds the default value on creation for the id field.
	cv.DefaultID = cvDescID.Default.(func() uuid.UUID)
	extractjobFields := schema.ExtractJob{}.Fields()
	_ = extractjobFields
	// extractjobDescFormat is the schema descriptor for format field.
	extractjobDescFormat := extractjobFields[4].Descriptor()
	// extractjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	extractjob.FormatValidator = func() func(string) error {
		validators := extractjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractjobDescStartedAt is the schema descriptor for started_at field.
	extractjobDescStartedAt := extractjobFields[5].Descriptor()
	// extractjob.DefaultStartedAt holds the default value on creation for the started_at field.
	extractjob.DefaultStartedAt = extractjobDescStartedAt.Default.(func() time.Time)
	// extractjobDescNeedsReview is the schema descriptor for needs_review field.
	extractjobDescNeedsReview := extractjobFields[10].Descriptor()
	// extractjob.DefaultNeedsReview holds the default value on creation for the needs_review field.
	extractjob.DefaultNeedsReview = extractjobDescNeedsReview.Default.(bool)
	// extractjobDescID is the schema descriptor for id field.
	extractjobDescID := extractjobFields[0].Descriptor()
	// extractjob.DefaultID holds the default value on creation for the id field.
	extractjob.DefaultID = extractjobDescID.Default.(func() uuid.UUID)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescName is the schema descriptor for name field.
	profileDescName := profileFields[1].Descriptor()
	// profile.NameValidator is a validator for the "name" field. It is called by the builders before save.
	profile.NameValidator = profileDescName.Validators[0].(func(string) error)
	// profileDescDefaultLanguage is the schema descriptor for default_language field.
	profileDescDefaultLanguage := profileFields[3].Descriptor()
	// profile.DefaultDefaultLanguage holds the default value on creation for the default_language field.
	profile.DefaultDefaultLanguage = profileDescDefaultLanguage.Default.(string)
	// profile.DefaultLanguageValidator is a validator for the "default_language" field. It is called by the builders before save.
	profile.DefaultLanguageValidator = func() func(string) error {
		validators := profileDescDefaultLanguage.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(default_language string) error {
			for _, fn := range fns {
				if err := fn(default_language); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[4].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[5].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// profileDescID is the schema descriptor for id field.
	profileDescID := profileFields[0].Descriptor()
	// profile.DefaultID holds the default value on creation for the id field.
	profile.DefaultID = profileDescID.Default.(func() uuid.UUID)
	scanfileFields := schema.ScanFile{}.Fields()
	_ = scanfileFields
	// scanfileDescSourcePath is the schema descriptor for source_path field.
	scanfileDescSourcePath := scanfileFields[2].Descriptor()
	// scanfile.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	scanfile.SourcePathValidator = scanfileDescSourcePath.Validators[0].(func(string) error)
	// scanfileDescContentHash is the schema descriptor for content_hash field.
	scanfileDescContentHash := scanfileFields[3].Descriptor()
	// scanfile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	scanfile.ContentHashValidator = scanfileDescContentHash.Validators[0].(func([]byte) error)
	// scanfileDescFilename is the schema descriptor for filename field.
	scanfileDescFilename := scanfileFields[4].Descriptor()
	// scanfile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	scanfile.FilenameValidator = scanfileDescFilename.Validators[0].(func(string) error)
	// scanfileDescFileExt is the schema descriptor for file_ext field.
	scanfileDescFileExt := scanfileFields[5].Descriptor()
	// scanfile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	scanfile.FileExtValidator = scanfileDescFileExt.Validators[0].(func(string) error)
	// scanfileDescFileSize is the schema descriptor for file_size field.
	scanfileDescFileSize := scanfileFields[6].Descriptor()
	// scanfile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	scanfile.FileSizeValidator = scanfileDescFileSize.Validators[0].(func(int) error)
	// scanfileDescUploadedAt is the schema descriptor for uploaded_at field.
	scanfileDescUploadedAt := scanfileFields[7].Descriptor()
	// scanfile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	scanfile.DefaultUploadedAt = scanfileDescUploadedAt.Default.(func() time.Time)
	// scanfileDescID is the schema descriptor for id field.
	scanfileDescID := scanfileFields[0].Descriptor()
	// scanfile.DefaultID holds the default value on creation for the id field.
	scanfile.DefaultID = scanfileDescID.Default.(func() uuid.UUID)
}
