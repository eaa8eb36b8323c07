package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/mock"

	"github.com/okian/scoutboard/internal/adapters/http/api"
	repository "github.com/okian/scoutboard/internal/adapters/repository"
	service "github.com/okian/scoutboard/internal/app"
	"github.com/okian/scoutboard/internal/app/mockservice"
	"github.com/okian/scoutboard/internal/domain/model"
	"github.com/okian/scoutboard/internal/domain/scouting"
	"github.com/okian/scoutboard/internal/domain/types"
	"github.com/okian/scoutboard/pkg/logger"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newRouter(svc *mockservice.S, opts ...api.Option) *chi.Mux {
	r := chi.NewRouter()
	r.Use(api.RequestID)
	api.NewServer(svc, svc, opts...).Register(context.Background(), r)
	return r
}

func serve(h http.Handler, method, target string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, http.NoBody)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeError(w *httptest.ResponseRecorder) errorBody {
	var body errorBody
	So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
	return body
}

func TestServer_OpsRoutes(t *testing.T) {
	Convey("Given an API server", t, func() {
		svc := &mockservice.S{}
		r := newRouter(svc)

		Convey("When scraping /healthz", func() {
			w := serve(r, http.MethodGet, "/healthz", nil)

			Convey("Then Prometheus metrics should be served", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, "scoutboard_")
			})
		})

		Convey("When requesting /stats", func() {
			svc.On("GetStats").Return(map[string]interface{}{"started": true, "players": 8})
			w := serve(r, http.MethodGet, "/stats", nil)

			Convey("Then the service stats should be encoded", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				var stats map[string]any
				So(json.Unmarshal(w.Body.Bytes(), &stats), ShouldBeNil)
				So(stats["started"], ShouldEqual, true)
				So(stats["players"], ShouldEqual, float64(8))
			})
		})

		Convey("When a request carries no id", func() {
			svc.On("Matches", mock.Anything).Return([]model.Match{}, nil)
			w := serve(r, http.MethodGet, "/api/matches", nil)

			Convey("Then a UUID should be assigned", func() {
				_, err := uuid.Parse(w.Header().Get(api.RequestIDHeader))
				So(err, ShouldBeNil)
			})
		})

		Convey("When a request carries its own id", func() {
			svc.On("Matches", mock.Anything).Return([]model.Match{}, nil)
			id := uuid.NewString()
			w := serve(r, http.MethodGet, "/api/matches", map[string]string{api.RequestIDHeader: id})

			Convey("Then it should be echoed", func() {
				So(w.Header().Get(api.RequestIDHeader), ShouldEqual, id)
			})
		})

		Convey("When an unknown API path is requested", func() {
			w := serve(r, http.MethodGet, "/api/teams", nil)

			Convey("Then a JSON 404 should be returned", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
				So(decodeError(w).Code, ShouldEqual, "not_found")
			})
		})
	})
}

func TestServer_Players(t *testing.T) {
	Convey("Given an API server", t, func() {
		svc := &mockservice.S{}
		r := newRouter(svc)

		Convey("When listing players without a sort", func() {
			list := service.PlayerList{Sort: types.DefaultSort(), Players: []service.PlayerCard{
				{Player: model.Player{ID: 5, Name: "Kevin De Silva"}, AverageForm: 8.84},
			}}
			svc.On("ListPlayers", mock.Anything, "kev", types.DefaultSort()).Return(list, nil)
			w := serve(r, http.MethodGet, "/api/players?q=kev", nil)

			Convey("Then the default sort should be used", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				var got service.PlayerList
				So(json.Unmarshal(w.Body.Bytes(), &got), ShouldBeNil)
				So(got.Players, ShouldHaveLength, 1)
				So(got.Players[0].Name, ShouldEqual, "Kevin De Silva")
				svc.AssertExpectations(t)
			})
		})

		Convey("When the sort key is unknown", func() {
			w := serve(r, http.MethodGet, "/api/players?sort=height", nil)

			Convey("Then the request should be rejected", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				So(decodeError(w).Code, ShouldEqual, "bad_request")
				svc.AssertNotCalled(t, "ListPlayers", mock.Anything, mock.Anything, mock.Anything)
			})
		})

		Convey("When fetching a player", func() {
			svc.On("Profile", mock.Anything, 5).Return(service.PlayerProfile{
				PlayerCard:             service.PlayerCard{Player: model.Player{ID: 5, Name: "Kevin De Silva"}},
				ContractYearsRemaining: 2,
			}, nil)
			w := serve(r, http.MethodGet, "/api/players/5", nil)

			Convey("Then the profile should be returned", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, `"contract_years_remaining":2`)
			})
		})

		Convey("When the player id is not a number", func() {
			w := serve(r, http.MethodGet, "/api/players/abc", nil)

			Convey("Then a 400 should be returned", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				So(decodeError(w).Message, ShouldContainSubstring, "positive integer")
			})
		})

		Convey("When the player does not exist", func() {
			svc.On("Profile", mock.Anything, 99).Return(service.PlayerProfile{}, fmt.Errorf("%w: 99", repository.ErrPlayerNotFound))
			w := serve(r, http.MethodGet, "/api/players/99", nil)

			Convey("Then a 404 should be returned", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
				So(decodeError(w).Message, ShouldContainSubstring, "player not found")
			})
		})

		Convey("When the service has not started", func() {
			svc.On("Profile", mock.Anything, 1).Return(service.PlayerProfile{}, service.ErrNotStarted)
			w := serve(r, http.MethodGet, "/api/players/1", nil)

			Convey("Then a 503 should be returned", func() {
				So(w.Code, ShouldEqual, http.StatusServiceUnavailable)
			})
		})
	})
}

func TestServer_SquadAndComparison(t *testing.T) {
	Convey("Given an API server", t, func() {
		svc := &mockservice.S{}
		r := newRouter(svc)

		Convey("When filtering the squad", func() {
			q := types.Query{Search: "fc", Position: "ST", Value: types.Value20To40}
			svc.On("Squad", mock.Anything, q).Return(service.SquadView{Query: q, Total: 8}, nil)
			w := serve(r, http.MethodGet, "/api/squad?q=fc&position=st&value=20to40", nil)

			Convey("Then the parsed query should reach the service", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				svc.AssertExpectations(t)
			})
		})

		Convey("When the position is unknown", func() {
			w := serve(r, http.MethodGet, "/api/squad?position=sweeper", nil)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the value bucket is unknown", func() {
			w := serve(r, http.MethodGet, "/api/squad?value=cheap", nil)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When comparing two players", func() {
			c := scouting.Comparison{WinsA: 4, WinsB: 4, Recommended: scouting.First}
			svc.On("Compare", mock.Anything, 1, 2).Return(c, nil)
			w := serve(r, http.MethodGet, "/api/comparison?player1=1&player2=2", nil)

			Convey("Then the comparison should be returned", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				var got scouting.Comparison
				So(json.Unmarshal(w.Body.Bytes(), &got), ShouldBeNil)
				So(got.Recommended, ShouldEqual, scouting.First)
			})
		})

		Convey("When the second player is missing", func() {
			w := serve(r, http.MethodGet, "/api/comparison?player1=1", nil)

			Convey("Then a 400 should name the parameter", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				So(decodeError(w).Message, ShouldContainSubstring, "missing player2")
			})
		})
	})
}

func TestServer_Matches(t *testing.T) {
	Convey("Given an API server", t, func() {
		svc := &mockservice.S{}
		r := newRouter(svc)

		Convey("When fetching a match tab", func() {
			v := service.MatchView{Match: model.Match{ID: 1, Status: model.StatusLive}, Minute: 61, Tab: types.TabGoals}
			svc.On("Match", mock.Anything, 1, types.TabGoals).Return(v, nil)
			w := serve(r, http.MethodGet, "/api/matches/1?tab=goals", nil)

			Convey("Then the view should carry the minute", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, `"minute":61`)
			})
		})

		Convey("When the tab is unknown", func() {
			w := serve(r, http.MethodGet, "/api/matches/1?tab=cards", nil)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the match does not exist", func() {
			svc.On("Match", mock.Anything, 7, types.TabAll).Return(service.MatchView{}, repository.ErrMatchNotFound)
			w := serve(r, http.MethodGet, "/api/matches/7", nil)
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestServer_CORS(t *testing.T) {
	Convey("Given an API server limited to one origin", t, func() {
		svc := &mockservice.S{}
		svc.On("Matches", mock.Anything).Return([]model.Match{}, nil)
		r := newRouter(svc, api.WithAllowedOrigins([]string{"https://scouts.example"}))

		Convey("When the allowed origin calls the API", func() {
			w := serve(r, http.MethodGet, "/api/matches", map[string]string{"Origin": "https://scouts.example"})

			Convey("Then the origin should be allowed", func() {
				So(w.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "https://scouts.example")
			})
		})

		Convey("When another origin calls the API", func() {
			w := serve(r, http.MethodGet, "/api/matches", map[string]string{"Origin": "https://elsewhere.example"})

			Convey("Then no CORS header should be sent", func() {
				So(w.Header().Get("Access-Control-Allow-Origin"), ShouldBeEmpty)
			})
		})

		Convey("When a browser sends a preflight", func() {
			w := serve(r, http.MethodOptions, "/api/matches", map[string]string{
				"Origin":                        "https://scouts.example",
				"Access-Control-Request-Method": http.MethodGet,
			})

			Convey("Then GET should be allowed", func() {
				So(w.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "https://scouts.example")
				So(w.Header().Get("Access-Control-Allow-Methods"), ShouldContainSubstring, http.MethodGet)
			})
		})
	})
}

func TestRequestLogger(t *testing.T) {
	Convey("Given a request logger", t, func() {
		var buf bytes.Buffer
		So(logger.Init(logger.WithWriter(&buf)), ShouldBeNil)

		h := api.RequestID(api.RequestLogger(logger.Get())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})))

		Convey("When a request is served", func() {
			w := serve(h, http.MethodGet, "/squad?q=x", nil)

			Convey("Then one line should carry the status and request id", func() {
				out := buf.String()
				So(out, ShouldContainSubstring, "request handled")
				So(out, ShouldContainSubstring, "status=418")
				So(out, ShouldContainSubstring, "path=/squad")
				So(out, ShouldContainSubstring, "request_id="+w.Header().Get(api.RequestIDHeader))
			})
		})
	})
}
