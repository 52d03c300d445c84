package devo_test

import (
	"net/http"
	"testing"

	"github.com/andyle182810/devohub/devo"
	"github.com/andyle182810/devohub/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const groupResponse = `{"id":"g-1","name":"Customers","description":"All customers","contacts_count":12}`

func TestContactGroups_List(t *testing.T) {
	t.Parallel()

	stub := newAPIStub(t, http.StatusOK,
		`{"groups":[`+groupResponse+`],"page":2,"limit":10,"total":11,"total_pages":2}`)
	client := stub.client(t)

	result, err := client.ContactGroups.List(t.Context(), devo.ListContactGroupsParams{
		Page:         2,
		Limit:        10,
		Search:       "cust",
		SearchFields: []string{"name", "description"},
	})
	require.NoError(t, err)

	req := stub.lastRequest(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/api/v1/contacts-groups", req.Path)
	assert.Equal(t, "2", req.Query.Get("page"))
	assert.Equal(t, "10", req.Query.Get("limit"))
	assert.Equal(t, "cust", req.Query.Get("search"))
	assert.Equal(t, []string{"name", "description"}, req.Query["search_fields"])

	require.Len(t, result.Groups, 1)
	assert.Equal(t, "g-1", result.Groups[0].ID)
	assert.Equal(t, 12, result.Groups[0].ContactsCount)
	assert.Equal(t, 2, result.TotalPages)
}

func TestContactGroups_ListOmitsUnsetParams(t *testing.T) {
	t.Parallel()

	stub := newAPIStub(t, http.StatusOK, `{"groups":[]}`)
	client := stub.client(t)

	_, err := client.ContactGroups.List(t.Context(), devo.ListContactGroupsParams{})
	require.NoError(t, err)

	assert.Empty(t, stub.lastRequest(t).Query)
}

func TestContactGroups_Get(t *testing.T) {
	t.Parallel()

	stub := newAPIStub(t, http.StatusOK, groupResponse)
	client := stub.client(t)

	group, err := client.ContactGroups.Get(t.Context(), "g-1")
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/contacts-groups/g-1", stub.lastRequest(t).Path)
	assert.Equal(t, "Customers", group.Name)
}

func TestContactGroups_CreateTrimsName(t *testing.T) {
	t.Parallel()

	stub := newAPIStub(t, http.StatusCreated, groupResponse)
	client := stub.client(t)

	_, err := client.ContactGroups.Create(t.Context(), devo.CreateContactGroupRequest{
		Name:        "  Customers ",
		Description: "All customers",
		ContactIDs:  []string{"c-1", "c-2"},
		Metadata:    nil,
	})
	require.NoError(t, err)

	req := stub.lastRequest(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/v1/contacts-groups", req.Path)
	assert.JSONEq(t,
		`{"name":"Customers","description":"All customers","contact_ids":["c-1","c-2"]}`,
		string(req.Body))
}

func TestContactGroups_CreateRejectsLongDescription(t *testing.T) {
	t.Parallel()

	stub := newAPIStub(t, http.StatusCreated, groupResponse)
	client := stub.client(t)

	description := make([]byte, 1001)
	for i := range description {
		description[i] = 'x'
	}

	_, err := client.ContactGroups.Create(t.Context(), devo.CreateContactGroupRequest{
		Name:        "Customers",
		Description: string(description),
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Equal(t, "description", validationErrs[0].Field)
	assert.Empty(t, stub.calls())
}

func TestContactGroups_Update(t *testing.T) {
	t.Parallel()

	stub := newAPIStub(t, http.StatusOK, groupResponse)
	client := stub.client(t)

	_, err := client.ContactGroups.Update(t.Context(), "g-1", devo.UpdateContactGroupRequest{Description: "Renamed"})
	require.NoError(t, err)

	req := stub.lastRequest(t)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/api/v1/contacts-groups/g-1", req.Path)
	assert.JSONEq(t, `{"description":"Renamed"}`, string(req.Body))
}

func TestContactGroups_DeleteApproves(t *testing.T) {
	t.Parallel()

	stub := newAPIStub(t, http.StatusOK, groupResponse)
	client := stub.client(t)

	group, err := client.ContactGroups.Delete(t.Context(), "g-1")
	require.NoError(t, err)
	assert.Equal(t, "g-1", group.ID)

	req := stub.lastRequest(t)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/api/v1/contacts-groups/g-1", req.Path)
	assert.Equal(t, "yes", req.Query.Get("approve"))
}

func TestContactGroups_DeleteBulkSendsBody(t *testing.T) {
	t.Parallel()

	stub := newAPIStub(t, http.StatusOK, groupResponse)
	client := stub.client(t)

	_, err := client.ContactGroups.DeleteBulk(t.Context(), devo.DeleteContactGroupsRequest{
		GroupIDs:           []string{"g-1", "g-2"},
		TransferContactsTo: "g-3",
	})
	require.NoError(t, err)

	req := stub.lastRequest(t)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/api/v1/contacts-groups", req.Path)
	assert.Equal(t, "yes", req.Query.Get("approve"))
	assert.JSONEq(t, `{"group_ids":["g-1","g-2"],"transfer_contacts_to":"g-3"}`, string(req.Body))
}

func TestContactGroups_Search(t *testing.T) {
	t.Parallel()

	stub := newAPIStub(t, http.StatusOK, `{"groups":[`+groupResponse+`],"total":1}`)
	client := stub.client(t)

	result, err := client.ContactGroups.Search(t.Context(), devo.SearchContactGroupsParams{
		Query:  " cust ",
		Fields: []string{"name"},
		Page:   1,
		Limit:  0,
	})
	require.NoError(t, err)
	require.Len(t, result.Groups, 1)

	req := stub.lastRequest(t)
	assert.Equal(t, "/api/v1/contacts-groups/search", req.Path)
	assert.Equal(t, "cust", req.Query.Get("q"))
	assert.Equal(t, []string{"name"}, req.Query["fields"])
	assert.Equal(t, "1", req.Query.Get("page"))
	assert.False(t, req.Query.Has("limit"))
}

func TestContactGroups_SearchRequiresQuery(t *testing.T) {
	t.Parallel()

	stub := newAPIStub(t, http.StatusOK, `{"groups":[]}`)
	client := stub.client(t)

	_, err := client.ContactGroups.Search(t.Context(), devo.SearchContactGroupsParams{Query: "  "})

	require.ErrorIs(t, err, validator.ErrValidation)
	require.Empty(t, stub.calls())
}
