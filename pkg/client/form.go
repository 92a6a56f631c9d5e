package client

import (
	"context"
	"fmt"
	"sync"
)

// FormState tracks a dialog's lifecycle.
type FormState int

const (
	FormClosed FormState = iota
	FormOpen
	FormSubmitting
)

// FormMode distinguishes a blank add dialog from a prefilled edit dialog.
type FormMode int

const (
	FormModeAdd FormMode = iota
	FormModeEdit
)

// SubmitFunc persists the entity once every staged file has been uploaded.
// Attachments carry the hosted references to embed in the payload.
type SubmitFunc func(ctx context.Context, attachments []Attachment) error

// FormSession orchestrates one dialog's write path: collect input, upload
// staged files, submit, then revalidate the owning resource. A failed
// submit keeps the session open with the error surfaced and the collected
// input intact.
type FormSession struct {
	mu       sync.Mutex
	state    FormState
	mode     FormMode
	prefill  interface{}
	files    []StagedFile
	err      error
	uploader *Uploader
	submit   SubmitFunc
	store    *Store
	resource string
}

// NewFormSession constructs a closed session bound to a resource key.
func NewFormSession(uploader *Uploader, store *Store, resource string, submit SubmitFunc) *FormSession {
	return &FormSession{uploader: uploader, store: store, resource: resource, submit: submit}
}

// OpenAdd opens the dialog blank.
func (f *FormSession) OpenAdd() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != FormClosed {
		return
	}
	f.state = FormOpen
	f.mode = FormModeAdd
	f.prefill = nil
	f.err = nil
}

// OpenEdit opens the dialog prefilled with an existing entity.
func (f *FormSession) OpenEdit(prefill interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != FormClosed {
		return
	}
	f.state = FormOpen
	f.mode = FormModeEdit
	f.prefill = prefill
	f.err = nil
}

// StageFile queues a file for upload on the next submit.
func (f *FormSession) StageFile(name, mime string, content []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != FormOpen {
		return
	}
	f.files = append(f.files, StagedFile{Name: name, MIME: mime, Content: content})
}

// Submit uploads staged files, persists the entity and revalidates the
// resource. On any failure the session stays open with the error recorded
// and nothing discarded.
func (f *FormSession) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.state != FormOpen {
		f.mu.Unlock()
		return fmt.Errorf("form is not open")
	}
	f.state = FormSubmitting
	files := append([]StagedFile(nil), f.files...)
	f.mu.Unlock()

	var attachments []Attachment
	if len(files) > 0 {
		var err error
		attachments, err = f.uploader.UploadAll(ctx, files)
		if err != nil {
			f.fail(err)
			return err
		}
	}

	if err := f.submit(ctx, attachments); err != nil {
		f.fail(err)
		return err
	}

	if f.store != nil && f.resource != "" {
		f.store.Revalidate(ctx, f.resource)
	}

	f.mu.Lock()
	f.state = FormClosed
	f.err = nil
	f.files = nil
	f.prefill = nil
	f.mu.Unlock()
	return nil
}

// Cancel closes the dialog, discarding uncommitted local edits only.
func (f *FormSession) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == FormSubmitting {
		return
	}
	f.state = FormClosed
	f.err = nil
	f.files = nil
	f.prefill = nil
}

// State returns the current dialog state.
func (f *FormSession) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Mode returns how the dialog was opened.
func (f *FormSession) Mode() FormMode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

// Prefill returns the entity the dialog was opened with, if any.
func (f *FormSession) Prefill() interface{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.prefill
}

// Err returns the last submit failure while the dialog remains open.
func (f *FormSession) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *FormSession) fail(err error) {
	f.mu.Lock()
	f.state = FormOpen
	f.err = err
	f.mu.Unlock()
}
