package integration

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	depbottest "github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/test"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/test/mocks"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v4"
	. "github.com/onsi/gomega"
)

func TestAuth_success(t *testing.T) {
	ocmServer := mocks.NewMockConfigurableServerBuilder().Build()
	defer ocmServer.Close()

	h, teardown := depbottest.NewDepbotHelper(t, ocmServer)
	defer teardown()
	client := depbottest.NewAPIClient(h)

	account := h.NewRandAccount()
	ctx := h.NewAuthenticatedContext(account, nil)

	_, resp, err := client.ListRepositories(ctx, nil)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode()).To(Equal(http.StatusOK))
}

func TestAuth_publicEndpoints(t *testing.T) {
	ocmServer := mocks.NewMockConfigurableServerBuilder().Build()
	defer ocmServer.Close()

	h, teardown := depbottest.NewDepbotHelper(t, ocmServer)
	defer teardown()

	// version metadata and the OpenAPI document are served without a token
	for _, path := range []string{"", "/openapi"} {
		resp, err := resty.New().R().
			SetHeader("Content-Type", "application/json").
			Get(h.RestURL(path))
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode()).To(Equal(http.StatusOK), "expected %s to be public", path)
	}

	// the service discovery document too
	base := strings.TrimSuffix(h.RestURL(""), "/v1")
	resp, err := resty.New().R().Get(base)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode()).To(Equal(http.StatusOK))
}

func TestAuthFailure_withoutToken(t *testing.T) {
	ocmServer := mocks.NewMockConfigurableServerBuilder().Build()
	defer ocmServer.Close()

	h, teardown := depbottest.NewDepbotHelper(t, ocmServer)
	defer teardown()
	client := depbottest.NewAPIClient(h)

	_, resp, err := client.ListRepositories(context.Background(), nil)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode()).To(Equal(http.StatusUnauthorized))
}

func TestAuthFailure_expiredToken(t *testing.T) {
	ocmServer := mocks.NewMockConfigurableServerBuilder().Build()
	defer ocmServer.Close()

	h, teardown := depbottest.NewDepbotHelper(t, ocmServer)
	defer teardown()
	client := depbottest.NewAPIClient(h)

	account := h.NewRandAccount()
	ctx := h.NewAuthenticatedContext(account, jwt.MapClaims{
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, resp, err := client.ListRepositories(ctx, nil)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode()).To(Equal(http.StatusUnauthorized))
}

func TestAuthFailure_foreignIssuer(t *testing.T) {
	ocmServer := mocks.NewMockConfigurableServerBuilder().Build()
	defer ocmServer.Close()

	h, teardown := depbottest.NewDepbotHelper(t, ocmServer)
	defer teardown()
	client := depbottest.NewAPIClient(h)

	account := h.NewRandAccount()
	ctx := h.NewAuthenticatedContext(account, jwt.MapClaims{
		"iss": "https://some-other-issuer.example.com/auth/realms/other",
	})

	_, resp, err := client.ListRepositories(ctx, nil)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode()).To(Equal(http.StatusUnauthorized))
}
