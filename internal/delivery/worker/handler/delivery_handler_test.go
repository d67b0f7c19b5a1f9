package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func serveDelivery(t *testing.T, h *DeliveryHandler, ref, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/orders/"+ref+"/delivery", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("ref")
	c.SetParamValues(ref)

	require.NoError(t, h.UpdateDelivery(c))

	return rec
}

func TestDeliveryHandler_UpdateDelivery(t *testing.T) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	orderUC.EXPECT().
		UpdateDelivery(mock.Anything, "abc", &usecase.DeliveryInput{Received: true}).
		Return(&entity.Order{ID: 3, BeingDelivered: true, Received: true}, nil)

	rec := serveDelivery(t, NewDeliveryHandler(orderUC), "abc", `{"received":true}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"received":true`)
}

func TestDeliveryHandler_UnknownOrder(t *testing.T) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	orderUC.EXPECT().UpdateDelivery(mock.Anything, "nope", mock.Anything).Return(nil, domainerrors.ErrOrderNotFound)

	rec := serveDelivery(t, NewDeliveryHandler(orderUC), "nope", `{"being_delivered":true}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "ORDER_NOT_FOUND")
}
