package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"lnticket/api/internal/domain"
	"lnticket/api/internal/infra/cache"
	"lnticket/api/internal/logger"
	"lnticket/pkg/rr"

	"github.com/go-playground/validator/v10"
	"golang.org/x/net/proxy"
)

// dispatch failure never reaches the settlement path, everything here is
// logged and swallowed by the caller
type WebhookSenderService struct {
	rr    rr.RoundRobin
	list  *atomic.Pointer[[]string]
	l     logger.Logger
	cache *cache.Cache
}

const webhookTimeout = 6 * time.Second

func NewWebhookSenderService(proxyList []string, l logger.Logger) *WebhookSenderService {
	var list atomic.Pointer[[]string]
	list.Store(&proxyList)

	return &WebhookSenderService{rr: rr.New(&list), list: &list, l: l, cache: cache.InitStorage()}
}

type webhookRoundTripper struct {
	r http.RoundTripper
}

func (wrt webhookRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	r.Header.Add("User-Agent", "lnticket-webhook")
	return wrt.r.RoundTrip(r)
}

func (s *WebhookSenderService) sendWithoutProxy(url string, payload []byte) error {

	client := http.Client{
		Timeout: webhookTimeout,
	}

	resp, err := client.Post(url, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("invalid status code: %d", resp.StatusCode)
	}

	return nil
}

func (s *WebhookSenderService) sendWithProxy(url string, stringProxy string, payload []byte) error {

	socks, err := s.parseProxy(stringProxy)
	if err != nil {
		return fmt.Errorf("can't parse proxy: %w", err)
	}

	auth := proxy.Auth{
		User:     socks.user,
		Password: socks.pass,
	}

	dialer, err := proxy.SOCKS5("tcp", socks.ip+":"+socks.port, &auth, proxy.Direct)
	if err != nil {
		return err
	}

	dialContext := func(ctx context.Context, network, address string) (net.Conn, error) {
		return dialer.Dial(network, address)
	}

	transport := &http.Transport{
		DialContext:       dialContext,
		DisableKeepAlives: true,
	}

	client := &http.Client{
		Transport: webhookRoundTripper{r: transport},
		Timeout:   webhookTimeout,
	}

	resp, err := client.Post(url, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("invalid status code: %d", resp.StatusCode)
	}

	return nil

}

// one notification per ticket, ever. the dedup key is the ticket id since
// the wire payload itself carries no unique id.
func (s *WebhookSenderService) Send(url string, ticketId string, n domain.WebhookNotification) error {
	var MAX_ATTEMPTS = s.rr.GetProxyCount()
	var err error

	if exists := s.cache.Load(ticketId); exists != nil {
		return fmt.Errorf("webhook already sent")
	}

	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}

	stringProxy, ok := s.rr.Next()
	err = func() error {
		var attempts int

	sendReq:
		attempts++

		if attempts > MAX_ATTEMPTS && ok {
			return fmt.Errorf("max attempts exceeded")
		}

		if !ok {
			s.l.Debug("Can't get proxy. sending without proxy")
			err = s.sendWithoutProxy(url, payload)
			if err != nil {
				s.l.TemplWebhookErr("send without proxy error: "+err.Error(), url, attempts, logger.NA, payload)
				return err
			}
			return nil
		}

		err = s.sendWithProxy(url, stringProxy, payload)
		if err != nil {
			s.l.TemplWebhookErr("send with proxy error: "+err.Error(), url, attempts, stringProxy, payload)

			stringProxy, ok = s.rr.Next()
			goto sendReq
		}
		return nil
	}()
	if err == nil {
		s.cache.SetNoExp(ticketId, true)
	}

	return err
}

type parsedProxy struct {
	user string `validate:"required,gte=2"`
	pass string `validate:"required,gte=2"`
	ip   string `validate:"required,gte=2"`
	port string `validate:"required,gte=2"`
}

// login:password@ip:port
func (s *WebhookSenderService) parseProxy(str string) (parsedProxy, error) {
	splitA := strings.Split(str, ":") //  to [user pass@ip port]

	if len(splitA) != 3 {
		return parsedProxy{}, fmt.Errorf("invalid proxy format: given: " + str)
	}

	splitB := strings.Split(splitA[1], "@") // to [ pass ip]

	if len(splitB) != 2 {
		return parsedProxy{}, fmt.Errorf("invalid proxy format: given: " + str)
	}

	var pp = parsedProxy{}

	pp.user = splitA[0]
	pp.pass = splitB[0]

	pp.ip = splitB[1]
	pp.port = splitA[2]

	validator := validator.New()
	err := validator.Struct(pp)
	if err != nil {
		return parsedProxy{}, err
	}

	return pp, nil
}

func (s *WebhookSenderService) UpdateList(proxies []string) {

	var validProxies []string

	for _, proxy := range proxies {
		_, err := s.parseProxy(proxy)
		if err != nil {
			s.l.Debug("invalid proxy: " + proxy)
			continue
		}
		validProxies = append(validProxies, proxy)
	}

	s.list.Store(&validProxies)
}

func (s *WebhookSenderService) GetList() []string {
	listPtr := s.list.Load()
	if listPtr == nil {
		return []string{}
	}

	return *listPtr
}
