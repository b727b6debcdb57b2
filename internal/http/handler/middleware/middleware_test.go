package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"time"

	"openfund/internal/http/handler/middleware"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Middleware", func() {
	var (
		w        *httptest.ResponseRecorder
		req      *http.Request
		captured *http.Request
		next     http.Handler
	)

	BeforeEach(func() {
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/openfund/nonce", nil)
		captured = nil
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = r
			w.WriteHeader(http.StatusTeapot)
		})
	})

	Describe("RequestID", func() {
		It("should generate an id when none is sent", func() {
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)

			requestID := middleware.RequestIDFrom(captured.Context())
			Expect(uuid.Validate(requestID)).To(Succeed())
			Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal(requestID))
		})

		It("should keep the caller's id", func() {
			req.Header.Set(middleware.RequestIDHeader, "abc")
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)

			Expect(middleware.RequestIDFrom(captured.Context())).To(Equal("abc"))
		})
	})

	Describe("Session", func() {
		var session middleware.SessionMiddleware

		BeforeEach(func() {
			session = middleware.NewSessionMiddleware(time.Hour, true)
		})

		It("should mint a session cookie on the first visit", func() {
			session.Session(next).ServeHTTP(w, req)

			cookies := w.Result().Cookies()
			Expect(cookies).To(HaveLen(1))
			Expect(cookies[0].Name).To(Equal(middleware.SessionCookie))
			Expect(cookies[0].HttpOnly).To(BeTrue())
			Expect(cookies[0].Secure).To(BeTrue())
			Expect(cookies[0].MaxAge).To(Equal(3600))
			Expect(middleware.SessionIDFrom(captured.Context())).To(Equal(cookies[0].Value))
		})

		It("should reuse an existing session", func() {
			id := uuid.NewString()
			req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: id})
			session.Session(next).ServeHTTP(w, req)

			Expect(w.Result().Cookies()).To(BeEmpty())
			Expect(middleware.SessionIDFrom(captured.Context())).To(Equal(id))
		})

		It("should replace a forged session value", func() {
			req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "forged"})
			session.Session(next).ServeHTTP(w, req)

			Expect(middleware.SessionIDFrom(captured.Context())).NotTo(Equal("forged"))
			Expect(w.Result().Cookies()).To(HaveLen(1))
		})
	})

	Describe("Logging", func() {
		It("should pass the response through", func() {
			middleware.NewLoggingMiddleware(zap.NewNop().Sugar()).Logging(next).ServeHTTP(w, req)
			Expect(w.Code).To(Equal(http.StatusTeapot))
			Expect(captured).NotTo(BeNil())
		})
	})
})
