package listing

import (
	"context"

	"github.com/chromedp/chromedp"
)

// BrowserFetcher renders the listing in headless Chrome and returns the
// post-JavaScript markup. Used for sources that block plain HTTP clients.
type BrowserFetcher struct {
	chromeBin string
}

func NewBrowserFetcher(chromeBin string) *BrowserFetcher {
	return &BrowserFetcher{chromeBin: chromeBin}
}

func (f *BrowserFetcher) Fetch(ctx context.Context, url string) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(desktopUserAgent),
	)
	if f.chromeBin != "" {
		opts = append(opts, chromedp.ExecPath(f.chromeBin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	// Suppress chromedp log noise
	tabCtx, cancelTab := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelTab()

	var markup string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(url),
		chromedp.OuterHTML("html", &markup),
	)
	if err != nil {
		return "", FetchError{Message: err.Error()}
	}
	return markup, nil
}
