// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/docuvault/docintel/db/ent/schema"
	"github.com/docuvault/docintel/gen/ent/document"
	"github.com/docuvault/docintel/gen/ent/documenttemplate"
	"github.com/docuvault/docintel/gen/ent/filingrule"
	"github.com/docuvault/docintel/gen/ent/processjob"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFileName is the schema descriptor for file_name field.
	documentDescFileName := documentFields[2].Descriptor()
	// document.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	document.FileNameValidator = documentDescFileName.Validators[0].(func(string) error)
	// documentDescFilePath is the schema descriptor for file_path field.
	documentDescFilePath := documentFields[3].Descriptor()
	// document.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	document.FilePathValidator = documentDescFilePath.Validators[0].(func(string) error)
	// documentDescDocumentType is the schema descriptor for document_type field.
	documentDescDocumentType := documentFields[4].Descriptor()
	// document.DefaultDocumentType holds the default value on creation for the document_type field.
	document.DefaultDocumentType = documentDescDocumentType.Default.(string)
	// document.DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	document.DocumentTypeValidator = documentDescDocumentType.Validators[0].(func(string) error)
	// documentDescLanguage is the schema descriptor for language field.
	documentDescLanguage := documentFields[5].Descriptor()
	// document.DefaultLanguage holds the default value on creation for the language field.
	document.DefaultLanguage = documentDescLanguage.Default.(string)
	// documentDescContentHash is the schema descriptor for content_hash field.
	documentDescContentHash := documentFields[13].Descriptor()
	// document.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	document.ContentHashValidator = documentDescContentHash.Validators[0].(func([]byte) error)
	// documentDescFileSize is the schema descriptor for file_size field.
	documentDescFileSize := documentFields[14].Descriptor()
	// document.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	document.FileSizeValidator = documentDescFileSize.Validators[0].(func(int) error)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[15].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[16].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	documenttemplateFields := schema.DocumentTemplate{}.Fields()
	_ = documenttemplateFields
	// documenttemplateDescName is the schema descriptor for name field.
	documenttemplateDescName := documenttemplateFields[1].Descriptor()
	// documenttemplate.NameValidator is a validator for the "name" field. It is called by the builders before save.
	documenttemplate.NameValidator = documenttemplateDescName.Validators[0].(func(string) error)
	// documenttemplateDescDocumentType is the schema descriptor for document_type field.
	documenttemplateDescDocumentType := documenttemplateFields[2].Descriptor()
	// documenttemplate.DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	documenttemplate.DocumentTypeValidator = documenttemplateDescDocumentType.Validators[0].(func(string) error)
	// documenttemplateDescLanguage is the schema descriptor for language field.
	documenttemplateDescLanguage := documenttemplateFields[3].Descriptor()
	// documenttemplate.DefaultLanguage holds the default value on creation for the language field.
	documenttemplate.DefaultLanguage = documenttemplateDescLanguage.Default.(string)
	// documenttemplateDescIsActive is the schema descriptor for is_active field.
	documenttemplateDescIsActive := documenttemplateFields[7].Descriptor()
	// documenttemplate.DefaultIsActive holds the default value on creation for the is_active field.
	documenttemplate.DefaultIsActive = documenttemplateDescIsActive.Default.(bool)
	// documenttemplateDescCreatedAt is the schema descriptor for created_at field.
	documenttemplateDescCreatedAt := documenttemplateFields[8].Descriptor()
	// documenttemplate.DefaultCreatedAt holds the default value on creation for the created_at field.
	documenttemplate.DefaultCreatedAt = documenttemplateDescCreatedAt.Default.(func() time.Time)
	// documenttemplateDescUpdatedAt is the schema descriptor for updated_at field.
	documenttemplateDescUpdatedAt := documenttemplateFields[9].Descriptor()
	// documenttemplate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	documenttemplate.DefaultUpdatedAt = documenttemplateDescUpdatedAt.Default.(func() time.Time)
	// documenttemplate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	documenttemplate.UpdateDefaultUpdatedAt = documenttemplateDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documenttemplateDescID is the schema descriptor for id field.
	documenttemplateDescID := documenttemplateFields[0].Descriptor()
	// documenttemplate.DefaultID holds the default value on creation for the id field.
	documenttemplate.DefaultID = documenttemplateDescID.Default.(func() uuid.UUID)
	filingruleFields := schema.FilingRule{}.Fields()
	_ = filingruleFields
	// filingruleDescName is the schema descriptor for name field.
	filingruleDescName := filingruleFields[1].Descriptor()
	// filingrule.NameValidator is a validator for the "name" field. It is called by the builders before save.
	filingrule.NameValidator = filingruleDescName.Validators[0].(func(string) error)
	// filingruleDescPriority is the schema descriptor for priority field.
	filingruleDescPriority := filingruleFields[2].Descriptor()
	// filingrule.DefaultPriority holds the default value on creation for the priority field.
	filingrule.DefaultPriority = filingruleDescPriority.Default.(int)
	// filingruleDescIsActive is the schema descriptor for is_active field.
	filingruleDescIsActive := filingruleFields[3].Descriptor()
	// filingrule.DefaultIsActive holds the default value on creation for the is_active field.
	filingrule.DefaultIsActive = filingruleDescIsActive.Default.(bool)
	// filingruleDescCreatedAt is the schema descriptor for created_at field.
	filingruleDescCreatedAt := filingruleFields[7].Descriptor()
	// filingrule.DefaultCreatedAt holds the default value on creation for the created_at field.
	filingrule.DefaultCreatedAt = filingruleDescCreatedAt.Default.(func() time.Time)
	// filingruleDescUpdatedAt is the schema descriptor for updated_at field.
	filingruleDescUpdatedAt := filingruleFields[8].Descriptor()
	// filingrule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	filingrule.DefaultUpdatedAt = filingruleDescUpdatedAt.Default.(func() time.Time)
	// filingrule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	filingrule.UpdateDefaultUpdatedAt = filingruleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// filingruleDescID is the schema descriptor for id field.
	filingruleDescID := filingruleFields[0].Descriptor()
	// filingrule.DefaultID holds the default value on creation for the id field.
	filingrule.DefaultID = filingruleDescID.Default.(func() uuid.UUID)
	processjobFields := schema.ProcessJob{}.Fields()
	_ = processjobFields
	// processjobDescStatus is the schema descriptor for status field.
	processjobDescStatus := processjobFields[3].Descriptor()
	// processjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	processjob.StatusValidator = processjobDescStatus.Validators[0].(func(string) error)
	// processjobDescCreatedAt is the schema descriptor for created_at field.
	processjobDescCreatedAt := processjobFields[10].Descriptor()
	// processjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	processjob.DefaultCreatedAt = processjobDescCreatedAt.Default.(func() time.Time)
	// processjobDescUpdatedAt is the schema descriptor for updated_at field.
	processjobDescUpdatedAt := processjobFields[11].Descriptor()
	// processjob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	processjob.DefaultUpdatedAt = processjobDescUpdatedAt.Default.(func() time.Time)
	// processjob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	processjob.UpdateDefaultUpdatedAt = processjobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// processjobDescID is the schema descriptor for id field.
	processjobDescID := processjobFields[0].Descriptor()
	// processjob.DefaultID holds the default value on creation for the id field.
	processjob.DefaultID = processjobDescID.Default.(func() uuid.UUID)
}
