package devo

import (
	"context"
	"net/http"
	"time"

	"github.com/andyle182810/devohub/httpclient"
)

const contactGroupsPath = "contacts-groups"

type ContactGroupsService struct {
	service
}

type ContactGroup struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	UserID        string         `json:"user_id,omitempty"`
	ContactsCount int            `json:"contacts_count"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	CreatedAt     *time.Time     `json:"created_at,omitempty"`
	UpdatedAt     *time.Time     `json:"updated_at,omitempty"`
}

type ContactGroupsList struct {
	Groups     []ContactGroup `json:"groups"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	Total      int            `json:"total"`
	TotalPages int            `json:"total_pages"`
}

type ListContactGroupsParams struct {
	Page         int
	Limit        int
	Search       string
	SearchFields []string
}

type SearchContactGroupsParams struct {
	Query  string
	Fields []string
	Page   int
	Limit  int
}

type CreateContactGroupRequest struct {
	Name        string         `json:"name"                  validate:"required,max=255"`
	Description string         `json:"description,omitempty" validate:"max=1000"`
	ContactIDs  []string       `json:"contact_ids,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

type UpdateContactGroupRequest struct {
	Name        string         `json:"name,omitempty"        validate:"max=255"`
	Description string         `json:"description,omitempty" validate:"max=1000"`
	ContactIDs  []string       `json:"contact_ids,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

type DeleteContactGroupsRequest struct {
	GroupIDs           []string `json:"group_ids"                      validate:"required,min=1"`
	TransferContactsTo string   `json:"transfer_contacts_to,omitempty"`
}

func (s *ContactGroupsService) List(ctx context.Context, params ListContactGroupsParams) (*ContactGroupsList, error) {
	s.logger.Debug().Msg("Listing contact groups")

	query := (&queryBuilder{}).
		positive("page", params.Page).
		positive("limit", params.Limit).
		str("search", params.Search).
		list("search_fields", params.SearchFields).
		build()

	result, err := httpclient.GetJSON[ContactGroupsList](ctx, s.http, contactGroupsPath, query...)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *ContactGroupsService) Get(ctx context.Context, groupID string) (*ContactGroup, error) {
	id, err := s.requireID("group_id", groupID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Str("group_id", id).Msg("Fetching contact group")

	result, err := httpclient.GetJSON[ContactGroup](ctx, s.http, resourcePath(contactGroupsPath, id))
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *ContactGroupsService) Create(ctx context.Context, request CreateContactGroupRequest) (*ContactGroup, error) {
	name, err := s.validate.RequireString("name", request.Name)
	if err != nil {
		return nil, err
	}

	request.Name = name

	if err := s.validate.Validate(request); err != nil {
		return nil, err
	}

	s.logger.Info().Str("name", name).Msg("Creating contact group")

	result, err := httpclient.PostJSON[ContactGroup](ctx, s.http, contactGroupsPath, request)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *ContactGroupsService) Update(
	ctx context.Context,
	groupID string,
	request UpdateContactGroupRequest,
) (*ContactGroup, error) {
	id, err := s.requireID("group_id", groupID)
	if err != nil {
		return nil, err
	}

	if err := s.validate.Validate(request); err != nil {
		return nil, err
	}

	s.logger.Info().Str("group_id", id).Msg("Updating contact group")

	result, err := httpclient.PutJSON[ContactGroup](ctx, s.http, resourcePath(contactGroupsPath, id), request)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// Delete removes one group. The API requires explicit approval, which this call always grants.
func (s *ContactGroupsService) Delete(ctx context.Context, groupID string) (*ContactGroup, error) {
	id, err := s.requireID("group_id", groupID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("group_id", id).Msg("Deleting contact group")

	result, err := httpclient.DeleteJSON[ContactGroup](ctx, s.http, resourcePath(contactGroupsPath, id),
		httpclient.WithQuery("approve", approveYes))
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// DeleteBulk removes several groups, optionally moving their contacts to another group first.
func (s *ContactGroupsService) DeleteBulk(
	ctx context.Context,
	request DeleteContactGroupsRequest,
) (*ContactGroup, error) {
	if err := s.validate.Validate(request); err != nil {
		return nil, err
	}

	s.logger.Info().Int("groups", len(request.GroupIDs)).Msg("Deleting contact groups")

	var result ContactGroup

	err := s.http.Do(ctx, http.MethodDelete, contactGroupsPath, request, &result,
		httpclient.WithQuery("approve", approveYes))
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *ContactGroupsService) Search(
	ctx context.Context,
	params SearchContactGroupsParams,
) (*ContactGroupsList, error) {
	q, err := s.validate.RequireString("query", params.Query)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Str("query", q).Msg("Searching contact groups")

	query := (&queryBuilder{}).
		str("q", q).
		list("fields", params.Fields).
		positive("page", params.Page).
		positive("limit", params.Limit).
		build()

	result, err := httpclient.GetJSON[ContactGroupsList](ctx, s.http, contactGroupsPath+"/search", query...)
	if err != nil {
		return nil, err
	}

	return &result, nil
}
