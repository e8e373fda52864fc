package test

import (
	"math/rand"
	"sync"
	"time"
)

const (
	asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	shopLetters  = "abcdefghijklmnopqrstuvwxyz0123456789"
)

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomASCIIString returns a pseudo-random ASCII string within the provided bounds.
// When maxLen equals minLen the resulting string always has that exact length.
func RandomASCIIString(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	length := minLen
	if maxLen > minLen {
		length += randomIntn(maxLen - minLen + 1)
	}
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = asciiLetters[randomIntn(len(asciiLetters))]
	}
	return string(buf)
}

// RandomShop returns a random myshopify domain.
func RandomShop() string {
	buf := make([]byte, 6+randomIntn(8))
	for i := range buf {
		buf[i] = shopLetters[randomIntn(len(shopLetters))]
	}
	return string(buf) + ".myshopify.com"
}

// RandomOrderID returns a random numeric Shopify order id.
func RandomOrderID() string {
	buf := make([]byte, 13)
	buf[0] = byte('1' + randomIntn(9))
	for i := 1; i < len(buf); i++ {
		buf[i] = byte('0' + randomIntn(10))
	}
	return string(buf)
}

func randomIntn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}
