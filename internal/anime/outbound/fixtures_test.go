package outbound

import (
	"sync"
	"time"
)

const episodeListHTML = `<div class="ss-list">
<a title="Romance Dawn" class="ssl-item ep-item" data-number="1" data-id="2142" href="/watch/one-piece-100?ep=2142">
  <div class="ssli-order">1</div><div class="ep-name e-dynamic-name" title="Romance Dawn">Romance Dawn</div>
</a>
<a class="ssl-item ep-item ssl-item-filler" data-number="2" data-id="2143" href="/watch/one-piece-100?ep=2143">
  <div class="ep-name">The Great Swordsman Appears</div>
</a>
<a class="ssl-item ep-item" data-number="3" href="/watch/one-piece-100">broken</a>
</div>`

const serversHTML = `<div class="ps_-block ps_-block-sub servers-sub">
  <div class="server-item" data-type="sub" data-id="628181" data-server-id="4"><a href="javascript:;" class="btn">HD-1</a></div>
  <div class="server-item" data-type="sub" data-id="628182" data-server-id="1"><a href="javascript:;" class="btn">HD-2</a></div>
</div>
<div class="ps_-block ps_-block-sub servers-dub">
  <div class="server-item" data-type="DUB" data-id="628190" data-server-id="4"><a href="javascript:;" class="btn"> HD-1 </a></div>
</div>`

type observation struct {
	upstream string
	outcome  string
}

type recordingObserver struct {
	mu   sync.Mutex
	seen []observation
}

func (o *recordingObserver) ObserveUpstream(upstream, outcome string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.seen = append(o.seen, observation{upstream: upstream, outcome: outcome})
}
