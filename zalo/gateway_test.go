package zalo

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testCreds = Credentials{Cookie: "zpsid=abc", Imei: "imei-1", UserAgent: "agent/1.0"}

func newGatewayServer(t *testing.T, handler http.HandlerFunc) Gateway {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewGateway(srv.URL, time.Second, 1000)
}

func loginOK(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"ownId":"own-1"}`))
}

func TestGateway_LoginCarriesCredentials(t *testing.T) {
	var got http.Header
	gw := newGatewayServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/login", r.URL.Path)
		got = r.Header.Clone()
		loginOK(w)
	})

	session, err := gw.Login(context.Background(), testCreds)

	require.NoError(t, err)
	require.Equal(t, "own-1", session.OwnId())
	require.Equal(t, "zpsid=abc", got.Get(headerCookie))
	require.Equal(t, "imei-1", got.Get(headerImei))
	require.Equal(t, "agent/1.0", got.Get("User-Agent"))
}

func TestGateway_LoginExpired(t *testing.T) {
	gw := newGatewayServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := gw.Login(context.Background(), testCreds)

	require.Equal(t, ErrSessionExpired, err)
}

func TestGateway_LoginInvalidProxy(t *testing.T) {
	gw := NewGateway("http://localhost:1", time.Second, 10)

	_, err := gw.Login(context.Background(), Credentials{Proxy: "::not a url"})

	require.Error(t, err)
}

func TestSession_FindUser(t *testing.T) {
	gw := newGatewayServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/login":
			loginOK(w)
		case "/api/find-user":
			var in map[string]string
			_ = json.NewDecoder(r.Body).Decode(&in)
			if in["phone"] == "0909123456" {
				_, _ = w.Write([]byte(`{"uid":"u-1","displayName":"An"}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}
	})
	session, err := gw.Login(context.Background(), testCreds)
	require.NoError(t, err)

	contact, err := session.FindUser(context.Background(), "0909123456")
	require.NoError(t, err)
	require.Equal(t, "u-1", contact.Id)
	require.Equal(t, "0909123456", contact.Phone)

	_, err = session.FindUser(context.Background(), "0000")
	require.True(t, errors.Is(err, ErrContactNotFound))
}

func TestSession_SendMessage(t *testing.T) {
	var body map[string]string
	var fail atomic.Bool
	gw := newGatewayServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/login":
			loginOK(w)
		case "/api/send-message":
			data, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(data, &body)
			if fail.Load() {
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte("blocked"))
				return
			}
			_, _ = w.Write([]byte(`{"msgId":"m-1"}`))
		}
	})
	session, _ := gw.Login(context.Background(), testCreds)

	receipt, err := session.SendMessage(context.Background(), "u-1", "hello")
	require.NoError(t, err)
	require.Equal(t, "m-1", receipt.MessageId)
	require.Equal(t, map[string]string{"threadId": "u-1", "message": "hello"}, body)

	fail.Store(true)
	_, err = session.SendMessage(context.Background(), "u-1", "hello")
	var de *DeliveryError
	require.True(t, errors.As(err, &de))
	var se *StatusError
	require.True(t, errors.As(err, &se))
	require.Equal(t, http.StatusBadGateway, se.Status)
	require.Contains(t, err.Error(), "blocked")
}

func TestSession_SendFriendRequestError(t *testing.T) {
	gw := newGatewayServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/login" {
			loginOK(w)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	})
	session, _ := gw.Login(context.Background(), testCreds)

	err := session.SendFriendRequest(context.Background(), "u-1", "hi")

	var re *RequestError
	require.True(t, errors.As(err, &re))
	require.True(t, errors.Is(err, ErrSessionExpired))
}

func TestSession_FriendsAndGroups(t *testing.T) {
	gw := newGatewayServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/login":
			loginOK(w)
		case "/api/friends":
			_, _ = w.Write([]byte(`[{"uid":"u-1"},{"uid":"u-2"}]`))
		case "/api/groups":
			_, _ = w.Write([]byte(`[{"groupId":"g-1","name":"team","totalMember":3}]`))
		}
	})
	session, _ := gw.Login(context.Background(), testCreds)

	friends, err := session.Friends(context.Background())
	require.NoError(t, err)
	require.Len(t, friends, 2)

	groups, err := session.Groups(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, groups[0].TotalMember)
}

func TestGateway_QRLogin(t *testing.T) {
	gw := newGatewayServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/qr/start":
			_, _ = w.Write([]byte(`{"token":"t-1","qr":"zalo://qr/abc"}`))
		case "/api/qr/t-1":
			_, _ = w.Write([]byte(`{"state":"success","cookie":[{"name":"a","value":"1"}],"imei":"i","displayName":"An"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	ticket, err := gw.StartQRLogin(context.Background(), "agent")
	require.NoError(t, err)
	require.Equal(t, "zalo://qr/abc", ticket.Code)

	status, err := gw.PollQRLogin(context.Background(), "t-1")
	require.NoError(t, err)
	require.Equal(t, QRSuccess, status.State)
	require.True(t, status.State.Done())
	cookie, err := NormalizeCookie(status.Cookie)
	require.NoError(t, err)
	require.Equal(t, "a=1", cookie)

	status, err = gw.PollQRLogin(context.Background(), "gone")
	require.NoError(t, err)
	require.Equal(t, QRExpired, status.State)
}

func TestGateway_CancelledContext(t *testing.T) {
	gw := newGatewayServer(t, func(w http.ResponseWriter, r *http.Request) {
		loginOK(w)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gw.Login(ctx, testCreds)

	require.Error(t, err)
}
