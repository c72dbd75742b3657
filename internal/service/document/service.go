package document

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/ability"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/document"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/employee"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/storage"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/requestctx"
	"github.com/google/uuid"
)

const documentURLExpiry = 15 * time.Minute

type DocumentServiceImpl struct {
	document.DocumentRepository
	employee.EmployeeRepository
	fileStorage storage.FileStorage
}

func NewDocumentService(
	documentRepo document.DocumentRepository,
	employeeRepo employee.EmployeeRepository,
	fileStorage storage.FileStorage,
) document.DocumentService {
	return &DocumentServiceImpl{
		DocumentRepository: documentRepo,
		EmployeeRepository: employeeRepo,
		fileStorage:        fileStorage,
	}
}

// Upload implements document.DocumentService.
func (s *DocumentServiceImpl) Upload(ctx context.Context, employeeID string, file io.Reader, filename string, contentType string, size int64) (document.DocumentResponse, error) {
	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return document.DocumentResponse{}, ability.ErrNotAMember
	}

	ab := requestctx.Ability(ctx)
	if !ab.Can(ability.CapabilityCreate, ability.SubjectDocument) && employeeID != actor.ID {
		return document.DocumentResponse{}, ability.ErrForbidden
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID, actor.OrganizationID); err != nil {
		return document.DocumentResponse{}, err
	}

	id := uuid.NewString()
	path := fmt.Sprintf("documents/%s/%s%s", actor.OrganizationID, id, filepath.Ext(filename))
	storedPath, err := s.fileStorage.Upload(ctx, file, path, contentType)
	if err != nil {
		return document.DocumentResponse{}, fmt.Errorf("failed to store document: %w", err)
	}

	doc, err := s.DocumentRepository.Create(ctx, document.Document{
		ID:             id,
		OrganizationID: actor.OrganizationID,
		EmployeeID:     employeeID,
		Name:           filepath.Base(filename),
		FilePath:       storedPath,
		ContentType:    contentType,
		SizeBytes:      size,
		UploadedBy:     actor.ID,
	})
	if err != nil {
		return document.DocumentResponse{}, err
	}
	return s.toDocumentResponse(ctx, doc), nil
}

// List implements document.DocumentService. Without the manage grant the
// listing is forced onto the caller's own documents.
func (s *DocumentServiceImpl) List(ctx context.Context, employeeID *string) ([]document.DocumentResponse, error) {
	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return nil, ability.ErrNotAMember
	}

	ab := requestctx.Ability(ctx)
	orgWide := ab.Can(ability.CapabilityManage, ability.SubjectDocument)

	var docs []document.Document
	var err error
	switch {
	case !orgWide:
		docs, err = s.DocumentRepository.ListByEmployee(ctx, actor.ID, actor.OrganizationID)
	case employeeID != nil:
		docs, err = s.DocumentRepository.ListByEmployee(ctx, *employeeID, actor.OrganizationID)
	default:
		docs, err = s.DocumentRepository.ListByOrganization(ctx, actor.OrganizationID)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]document.DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		responses = append(responses, s.toDocumentResponse(ctx, doc))
	}
	return responses, nil
}

// Delete implements document.DocumentService. The stored file goes with the
// row; a failed file delete does not resurrect the record.
func (s *DocumentServiceImpl) Delete(ctx context.Context, id string) error {
	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return ability.ErrNotAMember
	}

	doc, err := s.DocumentRepository.GetByID(ctx, id, actor.OrganizationID)
	if err != nil {
		return err
	}

	ab := requestctx.Ability(ctx)
	if !ab.Can(ability.CapabilityDelete, ability.SubjectDocument) && doc.EmployeeID != actor.ID {
		return ability.ErrForbidden
	}

	if err := s.DocumentRepository.Delete(ctx, id, actor.OrganizationID); err != nil {
		return err
	}
	_ = s.fileStorage.Delete(ctx, doc.FilePath)
	return nil
}

func (s *DocumentServiceImpl) toDocumentResponse(ctx context.Context, doc document.Document) document.DocumentResponse {
	url, err := s.fileStorage.GetURL(ctx, doc.FilePath, documentURLExpiry)
	if err != nil {
		url = ""
	}

	return document.DocumentResponse{
		ID:          doc.ID,
		EmployeeID:  doc.EmployeeID,
		Name:        doc.Name,
		URL:         url,
		ContentType: doc.ContentType,
		SizeBytes:   doc.SizeBytes,
		UploadedBy:  doc.UploadedBy,
		CreatedAt:   doc.CreatedAt.Format(time.RFC3339),
	}
}
