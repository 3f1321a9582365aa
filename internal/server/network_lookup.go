package server

import (
	"net/http"
	"strings"

	"github.com/0xPexy/deployconf/internal/accounts"
	"github.com/0xPexy/deployconf/internal/buildtool"
	"github.com/0xPexy/deployconf/internal/config"
	"github.com/gin-gonic/gin"
)

type networkHandler struct {
	cfg config.AppConfig
}

type NetworkResponse struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	Address string `json:"address"`
	Default bool   `json:"default"`
}

type NetworkListResponse struct {
	DefaultNetwork string            `json:"defaultNetwork"`
	Networks       []NetworkResponse `json:"networks"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func newNetworkHandler(cfg config.AppConfig) *networkHandler {
	return &networkHandler{cfg: cfg}
}

// addressOf returns the account address for a key, or "" if the key does not
// parse. Key material never leaves this function.
func addressOf(key string) string {
	acct, err := accounts.FromKey(key)
	if err != nil {
		return ""
	}
	return acct.Address.Hex()
}

func (h *networkHandler) network(name string) (NetworkResponse, bool) {
	p, ok := h.cfg.Network(name)
	if !ok {
		return NetworkResponse{}, false
	}
	return NetworkResponse{
		Name:    name,
		URL:     p.URL(),
		Address: addressOf(p.AccountKey()),
		Default: name == h.cfg.DefaultNetwork(),
	}, true
}

// GetConfig godoc
// @Summary Get the build tool configuration
// @Description Returns the build tool configuration with each account key replaced by its derived address ("" when the key does not parse).
// @Tags Config
// @Produce json
// @Success 200 {object} buildtool.BuildToolConfig
// @Router /api/v1/config [get]
func (h *networkHandler) GetConfig(c *gin.Context) {
	bt := buildtool.ToBuildToolConfig(h.cfg)
	for name, n := range bt.Networks {
		p, _ := h.cfg.Network(name)
		n.Accounts = []string{addressOf(p.AccountKey())}
		bt.Networks[name] = n
	}
	c.JSON(http.StatusOK, bt)
}

// ListNetworks godoc
// @Summary List configured networks
// @Description Returns every configured network sorted by name, with the default network selection.
// @Tags Networks
// @Produce json
// @Success 200 {object} NetworkListResponse
// @Router /api/v1/networks [get]
func (h *networkHandler) ListNetworks(c *gin.Context) {
	resp := NetworkListResponse{
		DefaultNetwork: h.cfg.DefaultNetwork(),
		Networks:       []NetworkResponse{},
	}
	for _, name := range h.cfg.NetworkNames() {
		n, _ := h.network(name)
		resp.Networks = append(resp.Networks, n)
	}
	c.JSON(http.StatusOK, resp)
}

// GetNetwork godoc
// @Summary Lookup a configured network
// @Description Returns the URL and derived account address of one network. Names are case-insensitive.
// @Tags Networks
// @Produce json
// @Param name path string true "Network name" Enums(sepolia)
// @Success 200 {object} NetworkResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/networks/{name} [get]
func (h *networkHandler) GetNetwork(c *gin.Context) {
	name := strings.ToLower(strings.TrimSpace(c.Param("name")))
	n, ok := h.network(name)
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "network not configured"})
		return
	}
	c.JSON(http.StatusOK, n)
}
