// Package page renders the landing page and the generated SEO assets
// (robots.txt, sitemap, favicon and OG card SVGs). Presentation only: the
// dispatcher owns nonces, cookies, and headers.
package page

import (
	"html/template"
	"io"

	"github.com/dmitrijs2005/landing/internal/server/abtest"
)

// Data carries everything the landing template needs for one render.
type Data struct {
	Title            string
	Description      string
	URL              string
	Nonce            string
	Variant          abtest.Variant
	AnalyticsToken   string
	TurnstileSiteKey string
	Year             int
}

// Tagline returns the hero copy for the assigned variant.
func (d Data) Tagline() string {
	if d.Variant == abtest.VariantB {
		return "The edge-native landing page: instant loads, global reach, zero servers."
	}
	return "Build and ship insanely fast landing pages on the Edge."
}

var landingTmpl = template.Must(template.New("landing").Parse(landingHTML))

// Render writes the landing page HTML. The nonce must match the one bound
// into the Content-Security-Policy header of the same response.
func Render(w io.Writer, d Data) error {
	return landingTmpl.Execute(w, d)
}

const landingHTML = `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>{{.Title}}</title>
    <meta name="description" content="{{.Description}}" />
    <link rel="canonical" href="{{.URL}}" />

    <meta property="og:type" content="website" />
    <meta property="og:title" content="{{.Title}}" />
    <meta property="og:description" content="{{.Description}}" />
    <meta property="og:url" content="{{.URL}}" />
    <meta property="og:image" content="{{.URL}}og.svg" />
    <meta name="twitter:card" content="summary_large_image" />

    <style nonce="{{.Nonce}}">
      :root{
        --bg:#0b0b10; --fg:#f1f3f5; --muted:#a9b2bc; --panel:#12131a; --border:#1f2230;
        --radius:14px;
      }
      *,*::before,*::after{ box-sizing:border-box }
      body{ margin:0; font:16px/1.5 system-ui,-apple-system,Segoe UI,Roboto,Inter,sans-serif; background:var(--bg); color:var(--fg) }
      a{ color:inherit }
      header{ display:flex; justify-content:space-between; align-items:center; gap:1rem; padding:1rem 1.25rem }
      .brand{ font-weight:700 }
      .cta{ display:inline-block; background:#fff; color:#000; border-radius:999px; padding:.5rem 1rem; text-decoration:none }
      .hero{ min-height:86vh; display:grid; place-items:center; text-align:center; padding:3rem 1rem }
      h1{ font-size:clamp(2rem, 5vw, 4rem); margin:0 0 .5rem }
      p.lead{ color:var(--muted); max-width:62ch; margin:0 auto 2rem }
      button,input,textarea{ font:inherit }
      input,textarea{ background:#0e0f16; color:var(--fg); border:1px solid var(--border); border-radius:10px; padding:.75rem .9rem }
      button{ background:#2ec4b6; color:#000; border:none; border-radius:999px; padding:.75rem 1.1rem; font-weight:700; cursor:pointer }
      .row{ display:flex; gap:.75rem; justify-content:center; flex-wrap:wrap }
      .card{ background:var(--panel); border:1px solid var(--border); border-radius:var(--radius); padding:1rem; max-width:720px; margin:1rem auto }
      .muted{ color:var(--muted) }
      .mono{ font-family:ui-monospace,SFMono-Regular,Menlo,Consolas,monospace }
      .grid{ display:grid; gap:.75rem; grid-template-columns:1fr }
      @media (min-width:720px){ .grid{ grid-template-columns:1fr 1fr } }
      .pill{ border:1px solid #2a2e3f; border-radius:999px; padding:.5rem .9rem; background:#12131a }
      .sr-only{ position:absolute; width:1px; height:1px; padding:0; margin:-1px; overflow:hidden; clip:rect(0,0,0,0); white-space:nowrap; border:0 }
      footer{ color:var(--muted); text-align:center; padding:2rem 1rem }
    </style>

    <link rel="icon" href="/favicon.svg" sizes="any" type="image/svg+xml" />

    <script type="application/ld+json" nonce="{{.Nonce}}">
      {"@context":"https://schema.org","@type":"WebSite","name":{{.Title}},"url":{{.URL}}}
    </script>
    {{if .AnalyticsToken}}<script defer src="https://static.cloudflareinsights.com/beacon.min.js" data-cf-beacon='{"token":"{{.AnalyticsToken}}"}'></script>{{end}}
    {{if .TurnstileSiteKey}}<script defer src="https://challenges.cloudflare.com/turnstile/v0/api.js"></script>{{end}}
  </head>
  <body>
    <header>
      <div class="brand">{{.Title}}</div>
      <nav><a class="cta" href="#join">Join the crew</a></nav>
    </header>

    <main id="main">
      <section class="hero" aria-label="Hero">
        <div>
          <h1>{{.Title}}</h1>
          <p class="lead">{{.Tagline}}</p>
          <div class="row" aria-live="polite">
            <span class="pill">Visits: <b id="visits">&mdash;</b></span>
            <span class="pill">Feature flag: <b id="flag">&mdash;</b></span>
          </div>
        </div>
      </section>

      <section class="card" aria-label="Join the crew">
        <h2>Join the crew</h2>
        <form id="join" class="grid">
          <div class="grid">
            <div>
              <label class="sr-only" for="first_name">First name</label>
              <input id="first_name" name="first_name" placeholder="First name" required />
            </div>
            <div>
              <label class="sr-only" for="last_name">Last name</label>
              <input id="last_name" name="last_name" placeholder="Last name" />
            </div>
          </div>
          <label class="sr-only" for="email">Email</label>
          <input id="email" name="email" type="email" placeholder="you@example.com" required autocomplete="email" />
          <label class="sr-only" for="mobile">Mobile</label>
          <input id="mobile" name="mobile" type="tel" placeholder="Mobile (optional)" autocomplete="tel" />
          <div class="row">
            <label><input type="checkbox" name="opt_email" /> Email updates</label>
            <label><input type="checkbox" name="opt_sms" /> Text me updates</label>
          </div>
          {{if .TurnstileSiteKey}}<div class="cf-turnstile" data-sitekey="{{.TurnstileSiteKey}}" data-theme="dark" data-appearance="interaction-only"></div>{{end}}
          <button type="submit">Join now</button>
        </form>
        <p class="muted" id="signup-msg" aria-live="polite"></p>
      </section>

      <section class="card" aria-label="Feature flags">
        <h2>Feature flags</h2>
        <form id="set-flag" class="grid">
          <label class="sr-only" for="kv-key">Flag key</label>
          <input id="kv-key" name="key" value="feature:beta" required />
          <label class="sr-only" for="kv-value">Flag value</label>
          <input id="kv-value" name="value" value="on" required />
          <button type="submit">Set flag</button>
        </form>
        <p class="muted mono" id="flag-msg" aria-live="polite"></p>
      </section>

      <section class="card" aria-label="Object upload">
        <h2>Drop a message</h2>
        <form id="to-r2" class="grid">
          <label class="sr-only" for="r2-key">Object key</label>
          <input id="r2-key" name="key" value="messages/hello.txt" required />
          <label class="sr-only" for="r2-content">Content</label>
          <textarea id="r2-content" name="content" rows="3">Hello!</textarea>
          <button type="submit">Upload</button>
        </form>
        <p class="muted mono" id="r2-msg" aria-live="polite"></p>
      </section>
    </main>

    <footer>
      <small class="muted">&copy; {{.Year}} {{.Title}}</small>
    </footer>

    <script type="module" nonce="{{.Nonce}}">
      const $ = (s)=>document.querySelector(s);
      fetch('/api/visits', {method:'POST'}).then(r=>r.json()).then(d=>$('#visits').textContent=d.count).catch(()=>{});
      fetch('/api/flag?key=feature:beta').then(r=>r.json()).then(d=>$('#flag').textContent=d.value ?? 'null');
      $('#join').addEventListener('submit', async (e)=>{
        e.preventDefault();
        const f = new FormData(e.target);
        const payload = {
          first_name: f.get('first_name'),
          last_name: f.get('last_name'),
          email: f.get('email'),
          mobile: f.get('mobile'),
          opt_email: !!f.get('opt_email'),
          opt_sms: !!f.get('opt_sms'),
          turnstileToken: document.querySelector('input[name="cf-turnstile-response"]')?.value || ''
        };
        const r = await fetch('/api/signup', {method:'POST', headers:{'content-type':'application/json'}, body: JSON.stringify(payload)});
        const j = await r.json();
        $('#signup-msg').textContent = j.ok ? "You're in! Check your inbox." : ('Error: '+ j.error);
        if (j.ok) {
          e.target.reset();
          try { window.turnstile?.reset(); } catch {}
        }
      });
      $('#set-flag').addEventListener('submit', async (e)=>{
        e.preventDefault();
        const fd = new FormData(e.target);
        const r = await fetch('/api/flag', {method:'PUT', headers:{'content-type':'application/json'}, body: JSON.stringify({key: fd.get('key'), value: fd.get('value')})});
        $('#flag-msg').textContent = JSON.stringify(await r.json());
      });
      $('#to-r2').addEventListener('submit', async (e)=>{
        e.preventDefault();
        const fd = new FormData(e.target);
        const r = await fetch('/api/r2', {method:'PUT', headers:{'content-type':'application/json'}, body: JSON.stringify({key: fd.get('key'), content: fd.get('content')})});
        $('#r2-msg').textContent = JSON.stringify(await r.json());
      });
    </script>
  </body>
</html>`
