package list

import "errors"

var (
	ErrListNotFound           = errors.New("list not found")
	ErrItemNotFound           = errors.New("item not found")
	ErrDuplicateTitle         = errors.New("a list with this title already exists")
	ErrDuplicateTag           = errors.New("tag already on list")
	ErrDuplicateCollaborator  = errors.New("collaborator already added")
	ErrListLimitReached       = errors.New("list limit reached for current plan")
	ErrItemLimitReached       = errors.New("item limit reached for current plan")
	ErrListTypeNotAllowed     = errors.New("list type not available on current plan")
	ErrSharingNotAllowed      = errors.New("sharing requires a paid plan")
	ErrImportNotAllowed       = errors.New("importing requires a paid plan")
	ErrGuestsNotAllowed       = errors.New("guest access requires a higher plan")
	ErrTeamsNotAllowed        = errors.New("team ownership requires the top plan")
	ErrShareLinkNotFound      = errors.New("shared list not found")
	ErrTemplateNotFound       = errors.New("template not found")
	ErrInvalidTemplateCode    = errors.New("invalid template code")
	ErrTemplatesNotAllowed    = errors.New("templates require a paid plan")
	ErrInvalidGuestPermission = errors.New("guest permission must be view or edit")
	ErrNotShared              = errors.New("list is not shared")
	ErrUnsupportedFormat      = errors.New("unsupported format")
	ErrEmptyImport            = errors.New("no items found in import data")
	ErrNotLoaded              = errors.New("lists are not loaded")
)
